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

package registry_test

import (
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/gid/apis"
	"dirpx.dev/gid/config"
	"dirpx.dev/gid/registry"
)

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	names := []string{"T0", "T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8", "T9"}
	models := make([]*apis.Model, len(names))
	for i, n := range names {
		models[i] = apis.NewModel(n)
	}

	// Register once (sequential) to establish baseline.
	for _, m := range models {
		if err := reg.Register(m); err != nil {
			t.Fatalf("register %s: %v", m.Name(), err)
		}
	}

	// Hammer with concurrent lookups and idempotent re-registrations.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				idx := (i + id) % len(names)
				m, ok := reg.Lookup(names[idx])
				if !ok || m != models[idx] {
					t.Errorf("Lookup(%s) = (%v,%v)", names[idx], m, ok)
					return
				}
			}
		}(w)
	}

	// Writers (idempotent)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				m := models[(i+id)%len(models)]
				if err := reg.Register(m); err != nil {
					t.Errorf("re-register %s: %v", m.Name(), err)
					return
				}
				_ = reg.Entries()
			}
		}(w)
	}
	wg.Wait()

	if got := reg.Count(); got != len(names) {
		t.Fatalf("Count() = %d, want %d", got, len(names))
	}
}

// TestConcurrentRegister_SameName_OneWinner registers distinct models under one
// name from many goroutines; exactly one registration may succeed.
func TestConcurrentRegister_SameName_OneWinner(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	workers := runtime.GOMAXPROCS(0) * 4

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			if err := reg.Register(apis.NewModel("Contended")); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("successful registrations = %d, want 1", wins)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}
