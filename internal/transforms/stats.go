/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package transforms

import (
	"math"
	"sort"
)

// Quantile returns the q-quantile of values, interpolating linearly between the closest ranks.
// values is not modified. An empty input yields NaN.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 {
		lo = 0
	}
	if hi >= len(sorted) {
		hi = len(sorted) - 1
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}

// Median is the 0.5 quantile; an even count yields the mean of the middle pair.
func Median(values []float64) float64 {
	return Quantile(values, 0.5)
}

// UpperFence is median + 1.5 * IQR.
func UpperFence(values []float64) float64 {
	q1 := Quantile(values, 0.25)
	q3 := Quantile(values, 0.75)
	return Median(values) + 1.5*(q3-q1)
}
