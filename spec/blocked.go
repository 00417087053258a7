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

package spec

import (
	"encoding/json"
	"math/bits"
	"strconv"
	"strings"

	"github.com/zintix-labs/bgodds/errs"
	"gopkg.in/yaml.v3"
)

// Blocked 被對手佔住（封鎖）的點，以 bit 表示：bit0 = 點1 ... bit5 = 點6。
//
// 值型別，傳入計算器後對計算器而言是唯讀的。
type Blocked uint8

const allBlockedMask Blocked = 1<<MaxPoint - 1

// AllBlocked 六個點全被封鎖
func AllBlocked() Blocked { return allBlockedMask }

// NewBlocked 由點數列表建立集合，重複的點只算一次。
func NewBlocked(points ...int) (Blocked, error) {
	var b Blocked
	for _, p := range points {
		if p < MinPoint || p > MaxPoint {
			return 0, errs.InvalidArgf("blocked point %d out of range [%d,%d]", p, MinPoint, MaxPoint)
		}
		b |= 1 << (p - 1)
	}
	return b, nil
}

// BlockedFromMask 由 6-bit mask 建立集合
func BlockedFromMask(m uint8) (Blocked, error) {
	if Blocked(m)&^allBlockedMask != 0 {
		return 0, errs.InvalidArgf("blocked mask %#x has bits outside points 1..6", m)
	}
	return Blocked(m), nil
}

// ParseBlocked 解析 "2,4"、"2 4"、"" 或 "none"。
func ParseBlocked(s string) (Blocked, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return 0, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == ';' })
	points := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return 0, errs.InvalidArgf("blocked point %q is not a number", f)
		}
		points = append(points, v)
	}
	return NewBlocked(points...)
}

// Has 點 p 是否被封鎖；範圍外的點永遠回傳 false。
func (b Blocked) Has(p int) bool {
	if p < MinPoint || p > MaxPoint {
		return false
	}
	return b&(1<<(p-1)) != 0
}

// Len 被封鎖的點數
func (b Blocked) Len() int { return bits.OnesCount8(uint8(b & allBlockedMask)) }

// Mask 原始 bit mask
func (b Blocked) Mask() uint8 { return uint8(b) }

func (b Blocked) Valid() bool { return b&^allBlockedMask == 0 }

// Toggle 切換點 p 的封鎖狀態
func (b Blocked) Toggle(p int) (Blocked, error) {
	if p < MinPoint || p > MaxPoint {
		return b, errs.InvalidArgf("blocked point %d out of range [%d,%d]", p, MinPoint, MaxPoint)
	}
	return b ^ (1 << (p - 1)), nil
}

// Points 由小到大列出被封鎖的點
func (b Blocked) Points() []int {
	out := make([]int, 0, MaxPoint)
	for p := MinPoint; p <= MaxPoint; p++ {
		if b.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Open 由小到大列出沒被封鎖的點
func (b Blocked) Open() []int {
	out := make([]int, 0, MaxPoint)
	for p := MinPoint; p <= MaxPoint; p++ {
		if !b.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

func (b Blocked) String() string {
	return joinPoints(b.Points())
}

func joinPoints(ps []int) string {
	if len(ps) == 0 {
		return "none"
	}
	strs := make([]string, len(ps))
	for i, p := range ps {
		strs[i] = strconv.Itoa(p)
	}
	return strings.Join(strs, ", ")
}

// OpenString 與 String 相同格式，列出開放點
func (b Blocked) OpenString() string {
	return joinPoints(b.Open())
}

// MarshalJSON 輸出為點數陣列，例如 [2,4]
func (b Blocked) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Points())
}

// UnmarshalJSON 接受點數陣列或 "2,4" 形式的字串
func (b *Blocked) UnmarshalJSON(data []byte) error {
	var points []int
	if err := json.Unmarshal(data, &points); err == nil {
		v, err := NewBlocked(points...)
		if err != nil {
			return err
		}
		*b = v
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errs.WrapWarn(err, "blocked must be an array of points or a string")
	}
	v, err := ParseBlocked(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// MarshalYAML 輸出為點數陣列
func (b Blocked) MarshalYAML() (any, error) {
	return b.Points(), nil
}

// UnmarshalYAML 接受 [2, 4] 或 "2,4"
func (b *Blocked) UnmarshalYAML(node *yaml.Node) error {
	var v Blocked
	var err error
	switch node.Kind {
	case yaml.SequenceNode:
		var points []int
		if err = node.Decode(&points); err != nil {
			return errs.WrapWarn(err, "blocked must be a list of points")
		}
		v, err = NewBlocked(points...)
	case yaml.ScalarNode:
		v, err = ParseBlocked(node.Value)
	default:
		return errs.InvalidArgf("blocked must be a list or a string (line %d)", node.Line)
	}
	if err != nil {
		return err
	}
	*b = v
	return nil
}
