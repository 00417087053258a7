// Copyright 2025 Zintix Labs
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

// Package calc 是各種擲骰機率的計算器。
//
// 每個計算器都是 (樣本空間, 規則參數) 的純函數：對 36 組骰子套用判斷式、
// 計數，再換算成百分比與賠率文字。不保留任何狀態，可任意並行呼叫。
package calc

import (
	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/spec"
)

func checkSum(s spec.Sum) error {
	if !s.Valid() {
		return errs.InvalidArgf("sum %d out of range [%d,%d]", s, spec.MinSum, spec.MaxSum)
	}
	return nil
}

func checkDistance(d spec.Distance) error {
	if !d.Valid() {
		return errs.InvalidArgf("distance %d out of range [%d,%d]", d, spec.MinDistance, spec.MaxDistance)
	}
	return nil
}

func checkPoint(p spec.Point) error {
	if !p.Valid() {
		return errs.InvalidArgf("point %d out of range [%d,%d]", p, spec.MinPoint, spec.MaxPoint)
	}
	return nil
}

func checkBlocked(b spec.Blocked) error {
	if !b.Valid() {
		return errs.InvalidArgf("blocked mask %#x has points outside [%d,%d]", b.Mask(), spec.MinPoint, spec.MaxPoint)
	}
	return nil
}

func checkCheckers(c spec.Checkers) error {
	if err := checkPoint(c.P1); err != nil {
		return err
	}
	if c.Single() {
		return nil
	}
	return checkPoint(c.P2)
}
