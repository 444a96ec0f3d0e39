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
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	log "github.com/sirupsen/logrus"
)

// Prefix of keys under which records are stored.
const recordPrefix = "proof/"

// BadgerConfig configures a persistent store.
type BadgerConfig struct {
	// Directory holding the database.
	Path string
	// InMemory keeps the database in memory only (for testing).
	InMemory bool
	// SyncWrites flushes every write to disk.
	SyncWrites bool
}

// Badger is a store persisted in a badger database, allowing prior proof data
// to survive between runs.
type Badger struct {
	db *badger.DB
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Store = (*Badger)(nil)

// OpenBadger opens (or creates) a persistent store.
func OpenBadger(cfg BadgerConfig) (*Badger, error) {
	var opts badger.Options
	//
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else if cfg.Path == "" {
		return nil, errors.New("path is required for persistent proof data")
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create proof data directory %s: %w", cfg.Path, err)
		}
		//
		opts = badger.DefaultOptions(cfg.Path)
	}
	//
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1).WithLogger(badgerLogger{})
	//
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open proof data: %w", err)
	}
	//
	return &Badger{db}, nil
}

// Lookup implementation for Store interface.
func (p *Badger) Lookup(vc string) (Record, bool, error) {
	var (
		record Record
		found  bool
	)
	//
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(recordPrefix + vc))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		//
		found = true
		//
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	//
	if err != nil {
		return Record{}, false, fmt.Errorf("lookup proof data for %s: %w", vc, err)
	}
	//
	return record, found, nil
}

// Save implementation for Store interface.
func (p *Badger) Save(record Record) error {
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	//
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(recordPrefix+record.VC), bytes)
	})
}

// Close implementation for Store interface.
func (p *Badger) Close() error {
	return p.db.Close()
}

// badgerLogger routes badger's internal logging through logrus, demoting its
// informational chatter to debug.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...any) {
	log.Errorf("badger: "+format, args...)
}

func (badgerLogger) Warningf(format string, args ...any) {
	log.Warnf("badger: "+format, args...)
}

func (badgerLogger) Infof(format string, args ...any) {
	log.Debugf("badger: "+format, args...)
}

func (badgerLogger) Debugf(format string, args ...any) {
	log.Tracef("badger: "+format, args...)
}
