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
package cmd

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Delay after the last change before running again, since editors often write
// a file in several steps.
const watchDebounce = 200 * time.Millisecond

// Run a given function, then run it again whenever one of the given files
// changes, until the context is cancelled.  Enclosing directories are watched,
// so that files replaced (rather than rewritten) are still seen.
func watchFiles(ctx context.Context, filenames []string, run func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	//
	defer watcher.Close()
	//
	var (
		watched = make(map[string]bool)
		dirs    = make(map[string]bool)
		timer   = time.NewTimer(0)
	)
	//
	for _, n := range filenames {
		abs, err := filepath.Abs(n)
		if err != nil {
			return err
		}
		//
		watched[abs] = true
		//
		if dir := filepath.Dir(abs); !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return err
			}
			//
			dirs[dir] = true
		}
	}
	//
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			//
			if abs, err := filepath.Abs(event.Name); err == nil && watched[abs] &&
				event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				log.Debugf("%s changed", event.Name)
				timer.Reset(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			//
			log.Warnf("watching files: %s", err)
		case <-timer.C:
			run()
			log.Infof("watching %d files for changes", len(watched))
		}
	}
}
