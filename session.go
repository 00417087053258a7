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

package bgodds

import (
	"strconv"

	"github.com/zintix-labs/bgodds/corefmt"
	"github.com/zintix-labs/bgodds/errs"
	"github.com/zintix-labs/bgodds/spec"
)

// 快照格式版本
const snapshotVersion byte = 1

// Session 呼叫端持有的「目前選取」狀態：點數和、封鎖點、距離、待下棋的棋子。
//
// 只能透過 Set* / Toggle* / Reset 變更，每個 setter 都會先驗證；驗證失敗時狀態不變。
// Session 不是 goroutine-safe，同一個 Session 只應由一個呼叫端持有。
type Session struct {
	sum      spec.Sum
	blocked  spec.Blocked
	distance spec.Distance
	checkers spec.Checkers
}

// NewSession 預設：點數和 2、無封鎖、距離 1、單顆棋在 1 點
func NewSession() *Session {
	s := new(Session)
	s.Reset()
	return s
}

func (s *Session) Reset() {
	s.sum = spec.Sum(spec.MinSum)
	s.blocked = 0
	s.distance = spec.Distance(spec.MinDistance)
	s.checkers = spec.Checkers{P1: spec.Point(spec.MinPoint)}
}

func (s *Session) Sum() int                { return int(s.sum) }
func (s *Session) Blocked() spec.Blocked   { return s.blocked }
func (s *Session) Distance() int           { return int(s.distance) }
func (s *Session) Checkers() spec.Checkers { return s.checkers }

func (s *Session) SetSum(v int) error {
	sum, err := spec.NewSum(v)
	if err != nil {
		return err
	}
	s.sum = sum
	return nil
}

// ToggleBlocked 切換單一點的封鎖狀態
func (s *Session) ToggleBlocked(p int) error {
	b, err := s.blocked.Toggle(p)
	if err != nil {
		return err
	}
	s.blocked = b
	return nil
}

func (s *Session) SetBlocked(b spec.Blocked) error {
	if !b.Valid() {
		return errs.InvalidArgf("blocked mask %#x out of range", b.Mask())
	}
	s.blocked = b
	return nil
}

func (s *Session) SetDistance(v int) error {
	d, err := spec.NewDistance(v)
	if err != nil {
		return err
	}
	s.distance = d
	return nil
}

// SetCheckers p2 為 0 表示單顆
func (s *Session) SetCheckers(p1, p2 int) error {
	c, err := spec.NewCheckers(p1, p2)
	if err != nil {
		return err
	}
	s.checkers = c
	return nil
}

// Op 一次狀態變更，供無狀態傳輸層（HTTP）使用
type Op struct {
	Op     string `json:"op"               yaml:"op"` // sum|toggle|blocked|distance|checkers|reset
	Value  int    `json:"value,omitempty"  yaml:"value,omitempty"`
	Points []int  `json:"points,omitempty" yaml:"points,omitempty"`
	P1     int    `json:"p1,omitempty"     yaml:"p1,omitempty"`
	P2     int    `json:"p2,omitempty"     yaml:"p2,omitempty"`
}

// Apply 依序套用 ops。任何一個失敗就回傳錯誤，且狀態回到套用前。
func (s *Session) Apply(ops ...Op) error {
	before := *s
	for i, op := range ops {
		if err := s.apply(op); err != nil {
			*s = before
			return errs.WrapWarn(err, "op #"+strconv.Itoa(i)+" ("+op.Op+")")
		}
	}
	return nil
}

func (s *Session) apply(op Op) error {
	switch op.Op {
	case "sum":
		return s.SetSum(op.Value)
	case "toggle":
		return s.ToggleBlocked(op.Value)
	case "blocked":
		b, err := spec.NewBlocked(op.Points...)
		if err != nil {
			return err
		}
		return s.SetBlocked(b)
	case "distance":
		return s.SetDistance(op.Value)
	case "checkers":
		return s.SetCheckers(op.P1, op.P2)
	case "reset":
		s.Reset()
		return nil
	}
	return errs.InvalidArgf("unknown op %q", op.Op)
}

// Snapshot 把狀態編碼成 base64url token：
//
//	frame(uvarint len || ver, sum, blocked, distance, p1, p2)
func (s *Session) Snapshot() string {
	payload := []byte{
		snapshotVersion,
		byte(s.sum),
		s.blocked.Mask(),
		byte(s.distance),
		byte(s.checkers.P1),
		byte(s.checkers.P2),
	}
	return corefmt.EncodeBase64URL(corefmt.EncodeBlobFrame(payload))
}

// RestoreSession 由 Snapshot 產生的 token 還原狀態。空字串回傳預設 Session。
func RestoreSession(token string) (*Session, error) {
	if token == "" {
		return NewSession(), nil
	}
	frame, err := corefmt.DecodeBase64URL(token)
	if err != nil {
		return nil, errs.WrapWarn(err, "invalid session token")
	}
	payload, err := corefmt.DecodeBlobFrame(frame)
	if err != nil {
		return nil, errs.WrapWarn(err, "invalid session token")
	}
	if len(payload) != 6 || payload[0] != snapshotVersion {
		return nil, errs.InvalidArgf("invalid session token: unsupported layout")
	}
	s := new(Session)
	if err := s.SetSum(int(payload[1])); err != nil {
		return nil, err
	}
	b, err := spec.BlockedFromMask(payload[2])
	if err != nil {
		return nil, err
	}
	s.blocked = b
	if err := s.SetDistance(int(payload[3])); err != nil {
		return nil, err
	}
	if err := s.SetCheckers(int(payload[4]), int(payload[5])); err != nil {
		return nil, err
	}
	return s, nil
}

// View 以目前狀態重新計算所有查詢
type View struct {
	Sum     *SumReport     `json:"sum"     yaml:"sum"`
	Entry   *EntryReport   `json:"entry"   yaml:"entry"`
	Hit     *HitReport     `json:"hit"     yaml:"hit"`
	Shot    *ShotReport    `json:"shot"    yaml:"shot"`
	BearOff *BearOffReport `json:"bearoff" yaml:"bearoff"`
}

func (s *Session) View() (*View, error) {
	v := new(View)
	var err error
	if v.Sum, err = QuerySum(int(s.sum)); err != nil {
		return nil, err
	}
	if v.Entry, err = QueryBarEntry(s.blocked); err != nil {
		return nil, err
	}
	if v.Hit, err = QueryHit(int(s.distance)); err != nil {
		return nil, err
	}
	if v.Shot, err = QueryShot(int(s.distance), s.blocked); err != nil {
		return nil, err
	}
	if v.BearOff, err = QueryBearOff(int(s.checkers.P1), int(s.checkers.P2)); err != nil {
		return nil, err
	}
	return v, nil
}

// TableOptions 以目前狀態高亮各表的對應列
func (s *Session) TableOptions() TableOptions {
	return TableOptions{
		Blocked:  s.blocked,
		Sum:      int(s.sum),
		Open:     len(s.blocked.Open()),
		Distance: int(s.distance),
		Checkers: s.checkers,
	}
}
