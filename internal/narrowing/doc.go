// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package narrowing answers whether an Outcome value is statically known to be a success
// or a failure at a given program point.
//
// Go has no flow-sensitive typing, so the answer is computed by a forward must-dataflow
// over the control-flow graph of the enclosing function. Only local variables whose
// address is never taken and which are never assigned inside a function literal are tracked.
package narrowing
