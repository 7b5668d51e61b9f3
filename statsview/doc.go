// This file is part of StellaGo.
//
// StellaGo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// StellaGo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with StellaGo.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview serves runtime statistics over HTTP on the local
// machine, through "github.com/go-echarts/statsview". The real server is
// only compiled in when the statsview build constraint is given; ordinary
// builds get a stub that reports itself as unavailable.
//
// Once launched, charts are served at:
//
//	localhost:12600/debug/statsview
//
// and the standard Go pprof endpoints at:
//
//	localhost:12600/debug/pprof/
package statsview
