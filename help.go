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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const scriptReference = `
| Command | Effect |
|---|---|
| use NAME | select (or create) the named tree |
| trees | list trees with their sizes, * marks the current one |
| insert KEY VALUE | insert, printing the rebalancing cost |
| delete KEY | delete, printing the rebalancing cost |
| search KEY | value stored under KEY |
| min / max | value of the smallest / largest key |
| keys / info | keys / values in key order |
| size / height / empty | tree statistics |
| rank KEY / select INDEX | order statistics (0-based) |
| split KEY LOW HIGH | split the current tree around KEY into two new trees |
| join KEY VALUE OTHER | join OTHER and (KEY, VALUE) into the current tree |
| print [-v] | draw the tree, -v adds values, heights and sizes |
| check | verify every tree invariant |
| stats | lookups and how many the membership filter answered |
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

An AVL tree toolkit: run tree scripts, explore a tree interactively and stress-test
the balancing code against a reference map.

Built with Go %s

# 1. Commands
* **avltree** or **avltree repl**: interactive session with a live tree diagram
* **avltree run SCRIPT**: execute a script file, use - for stdin
* **avltree stress**: random operations checked against a shadow map
* **avltree settings**: show or create ~/.avltree.yaml

# 2. Script language
Keys are non-negative integers, values are strings. Quote values containing
spaces. Lines starting with # are comments.
%s
# 3. Costs
Insert and delete report the rebalancing work they did: promotions and
demotions count 1, rotations count by kind. Join reports the height difference
of the joined trees plus one.

# Please be aware
* Copy to clipboard in the REPL on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), scriptReference)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
