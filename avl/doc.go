// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avl is an AVL tree over unique non-negative integer keys, augmented
// with subtree sizes and parent links.
//
// Besides search, insert and delete the tree supports split (partition
// around a present key) and join (merge two key-disjoint trees and a
// separating node). Insert and Delete report the rebalancing work they did.
// Promotions and demotions count 1. On insert a single rotation counts 2 and
// a double rotation 5; on delete a single rotation counts 3 and a double
// rotation 6. A delete whose fixup walk stops at a node left one level out of
// balance reports 0.
//
// A tree is not safe for concurrent use. Split and Join consume their inputs:
// after Join the argument tree is empty, after Split the receiver is empty.
package avl
