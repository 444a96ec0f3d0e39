// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package proofdata

import (
	"sync"
	"time"
)

// Record holds what was learned from the most recent successful proof of a VC.
type Record struct {
	// Name of the VC
	VC string `json:"vc"`
	// Keys of the transformations applied, in order.
	Transformations []string `json:"transformations"`
	// Depth of the proof
	Depth uint `json:"depth"`
	// Time at which the proof was found
	Updated time.Time `json:"updated"`
}

// Uses checks whether a given transformation was used in this proof.
func (p *Record) Uses(key string) bool {
	for _, k := range p.Transformations {
		if k == key {
			return true
		}
	}
	//
	return false
}

// Store provides prior proof data, keyed by VC name.  Stores must be safe for
// concurrent use.
type Store interface {
	// Lookup the record for a given VC, returning false if there is none.
	Lookup(vc string) (Record, bool, error)
	// Save a record, replacing any existing record for the same VC.
	Save(record Record) error
	// Close this store, releasing any resources.
	Close() error
}

// Memory is a store held in memory.
type Memory struct {
	mutex   sync.RWMutex
	records map[string]Record
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record)}
}

// Lookup implementation for Store interface.
func (p *Memory) Lookup(vc string) (Record, bool, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	//
	r, ok := p.records[vc]
	//
	return r, ok, nil
}

// Save implementation for Store interface.
func (p *Memory) Save(record Record) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	//
	p.records[record.VC] = record
	//
	return nil
}

// Close implementation for Store interface.
func (p *Memory) Close() error {
	return nil
}
