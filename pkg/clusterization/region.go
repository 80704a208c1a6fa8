// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package clusterization

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// NormalizeRegion canonicalizes a region name for comparison and map keys:
// Unicode case folding followed by removal of all whitespace.
// "East US", "eastus" and " EASTUS " all normalize to "eastus".
func NormalizeRegion(region string) string {
	folded := cases.Fold().String(region)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}
