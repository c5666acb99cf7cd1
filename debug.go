// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

//go:build debug
// +build debug

package siw

import (
	"log/slog"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

// ******************************************************************************************************

// logArena dumps the nodes of the current episode, in creation order.
func (e *engine) logArena() {
	for _, n := range e.nodes.nodes {
		_, closed := e.closed.seek(n.State)
		e.conf.logger.Debug("node",
			slog.Int("id", n.ID),
			slog.Int("parent", n.Parent),
			slog.Int("action", int(n.Action)),
			slog.Int("g", n.G),
			slog.Bool("closed", closed),
			slog.String("state", n.State.String()))
	}
}
