/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strategy_test

import (
	"runtime"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/gid/apis"
	"dirpx.dev/gid/config"
	"dirpx.dev/gid/strategy"
)

var (
	identification = apis.NewCapability("GlobalID::Identification")
	activeModel    = apis.NewCapability("ActiveModel::Model")
	enumerable     = apis.NewCapability("Enumerable")
	forwardable    = apis.NewCapability("Forwardable")

	person      = apis.NewModel("Person", apis.Implements(identification))
	personChild = apis.NewModel("Person::Child", apis.Extends(person))
	personModel = apis.NewModel("PersonModel", apis.Implements(activeModel, identification))

	hash    = apis.NewModel("Hash", apis.Implements(enumerable))
	str     = apis.NewModel("String")
	numeric = apis.NewModel("Numeric")
	integer = apis.NewModel("Integer", apis.Extends(numeric))
)

func TestSelfStrategy(t *testing.T) {
	s := strategy.NewSelfStrategy()
	cfg := config.DefaultConfig()

	assert.True(t, s.Match(person, person, cfg))
	// Identity is by name, not pointer.
	assert.True(t, s.Match(person, apis.NewModel("Person"), cfg))
	assert.False(t, s.Match(personChild, person, cfg))
	assert.False(t, s.Match(person, str, cfg))
	// A capability with the model's name is still not the model.
	assert.False(t, s.Match(person, apis.NewCapability("Person"), cfg))
	assert.False(t, s.Match(nil, person, cfg))
	assert.False(t, s.Match(person, nil, cfg))
}

func TestAncestorStrategy(t *testing.T) {
	s := strategy.NewAncestorStrategy()
	cfg := config.DefaultConfig()

	assert.True(t, s.Match(personChild, person, cfg))
	assert.True(t, s.Match(integer, numeric, cfg))
	// Self is not an ancestor.
	assert.False(t, s.Match(person, person, cfg))
	// Parents don't match children.
	assert.False(t, s.Match(person, personChild, cfg))
	assert.False(t, s.Match(personChild, str, cfg))
	// Capabilities are never ancestors.
	assert.False(t, s.Match(personChild, identification, cfg))
}

func TestAncestorStrategy_DeepChain(t *testing.T) {
	s := strategy.NewAncestorStrategy()
	cfg := config.DefaultConfig()

	root := apis.NewModel("Root")
	chain := []*apis.Model{root}
	for i := 1; i <= 40; i++ {
		chain = append(chain, apis.NewModel("L"+strconv.Itoa(i), apis.Extends(chain[i-1])))
	}
	leaf := chain[len(chain)-1]

	// Every ancestor matches, however far up the chain.
	for _, a := range chain[:len(chain)-1] {
		assert.True(t, s.Match(leaf, a, cfg), "leaf should match %s", a.Name())
	}
	assert.True(t, s.Match(leaf, root, config.NewConfig(config.WithMaxUnwrap(1))))
	assert.False(t, s.Match(root, leaf, cfg))
	assert.True(t, strategy.Satisfies(leaf, apis.Only(root), cfg, strategy.Default()...))
}

func TestCapabilityStrategy(t *testing.T) {
	s := strategy.NewCapabilityStrategy()
	cfg := config.DefaultConfig()

	assert.True(t, s.Match(person, identification, cfg))
	assert.True(t, s.Match(personModel, activeModel, cfg))
	// Inherited from Person.
	assert.True(t, s.Match(personChild, identification, cfg))
	assert.False(t, s.Match(person, enumerable, cfg))
	assert.False(t, s.Match(personModel, forwardable, cfg))
	// Models are never capabilities.
	assert.False(t, s.Match(person, person, cfg))
}

func TestSatisfies(t *testing.T) {
	cfg := config.DefaultConfig()
	ms := strategy.Default()

	cases := []struct {
		name  string
		model *apis.Model
		only  apis.Constraint
		want  bool
	}{
		{"no constraint", person, nil, true},
		{"empty constraint", person, apis.Only(), true},
		{"exact class", person, apis.Only(person), true},
		{"class no match", person, apis.Only(hash), false},
		{"subclass", personChild, apis.Only(person), true},
		{"subclass no match", personChild, apis.Only(str), false},
		{"module", person, apis.Only(identification), true},
		{"module on model", personModel, apis.Only(activeModel), true},
		{"inherited module", personChild, apis.Only(identification), true},
		{"module no match", person, apis.Only(enumerable), false},
		{"multiple class", person, apis.Only(integer, person), true},
		{"multiple class namespaced", personChild, apis.Only(person, personChild), true},
		{"multiple class no match", person, apis.Only(integer, numeric), false},
		{"multiple module", person, apis.Only(enumerable, identification), true},
		{"multiple module no match", personModel, apis.Only(enumerable, forwardable), false},
		{"nil model with constraint", nil, apis.Only(person), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, strategy.Satisfies(tc.model, tc.only, cfg, ms...))
		})
	}
}

func TestSatisfies_OrderDoesNotChangeResult(t *testing.T) {
	cfg := config.DefaultConfig()
	ms := strategy.Default()

	a := strategy.Satisfies(person, apis.Only(hash, person), cfg, ms...)
	b := strategy.Satisfies(person, apis.Only(person, hash), cfg, ms...)
	assert.True(t, a)
	assert.Equal(t, a, b)
}

func TestSatisfies_ShortCircuits(t *testing.T) {
	cfg := config.DefaultConfig()
	calls := 0
	counting := apis.MatcherFunc(func(m *apis.Model, d apis.Descriptor, _ apis.Config) bool {
		calls++
		return apis.SameDescriptor(m, d)
	})

	assert.True(t, strategy.Satisfies(person, apis.Only(person, hash, str), cfg, counting))
	assert.Equal(t, 1, calls)
}

func TestSatisfies_NoMatchers(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.False(t, strategy.Satisfies(person, apis.Only(person), cfg))
}

// A small concurrency smoke test: matchers hold no state.
func TestSatisfies_Concurrent(t *testing.T) {
	cfg := config.DefaultConfig()
	ms := strategy.Default()

	models := []*apis.Model{person, personChild, personModel, hash}
	want := []bool{true, true, true, false}
	only := apis.Only(str, identification)

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				idx := (i + id) % len(models)
				if got := strategy.Satisfies(models[idx], only, cfg, ms...); got != want[idx] {
					t.Errorf("Satisfies(%s) = %v, want %v", models[idx].Name(), got, want[idx])
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
