//  Copyright (c) 2023 Uber Technologies, Inc.
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

package pattern

// Backrefs binds backreference names to node indices (0..N). Zero
// value is ready to use.
type Backrefs struct {
	m map[string]int
}

// Get returns the node bound to name and whether it is bound.
func (b *Backrefs) Get(name string) (int, bool) {
	if b.m == nil {
		return 0, false
	}
	node, ok := b.m[name]
	return node, ok
}

// Set binds name to node.
func (b *Backrefs) Set(name string, node int) {
	if b.m == nil {
		b.m = make(map[string]int)
	}
	b.m[name] = node
}

// Delete removes any binding for name.
func (b *Backrefs) Delete(name string) {
	delete(b.m, name)
}

// Clear removes all bindings.
func (b *Backrefs) Clear() {
	for k := range b.m {
		delete(b.m, k)
	}
}

// Clone returns an independent copy of b.
func (b *Backrefs) Clone() *Backrefs {
	clone := &Backrefs{}
	if len(b.m) > 0 {
		clone.m = make(map[string]int, len(b.m))
		for k, v := range b.m {
			clone.m[k] = v
		}
	}
	return clone
}

// restore replaces b's contents with other's, in place, so that
// callers holding a *Backrefs see the rollback.
func (b *Backrefs) restore(other *Backrefs) {
	b.Clear()
	for k, v := range other.m {
		b.Set(k, v)
	}
}

// Range calls f for every current binding. f must not mutate b.
func (b *Backrefs) Range(f func(name string, node int)) {
	for k, v := range b.m {
		f(k, v)
	}
}

// ReplaceAll discards all current bindings and installs m's, used by
// treestate when remapping backreferences after a tree mutation.
func (b *Backrefs) ReplaceAll(m map[string]int) {
	b.Clear()
	for k, v := range m {
		b.Set(k, v)
	}
}
