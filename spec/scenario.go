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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zintix-labs/bgodds/errs"
	"gopkg.in/yaml.v3"
)

// Kind 查詢種類
type Kind string

const (
	KindSum     Kind = "sum"
	KindEntry   Kind = "entry"
	KindHit     Kind = "hit"
	KindShot    Kind = "shot"
	KindBearOff Kind = "bearoff"
)

// Kinds 所有查詢種類（穩定順序）
var Kinds = []Kind{KindSum, KindEntry, KindHit, KindShot, KindBearOff}

// ParseKind 解析查詢種類，接受 "bar" 作為 "entry" 的別名。
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSum, KindEntry, KindHit, KindShot, KindBearOff:
		return Kind(s), nil
	case "bar":
		return KindEntry, nil
	}
	return "", errs.InvalidArgf("unknown kind %q (want sum|entry|hit|shot|bearoff)", s)
}

// Scenario 批次檔中的一筆查詢
type Scenario struct {
	Name     string  `yaml:"name"               json:"name"`
	Kind     Kind    `yaml:"kind"               json:"kind"`
	Sum      int     `yaml:"sum,omitempty"      json:"sum,omitempty"`
	Distance int     `yaml:"distance,omitempty" json:"distance,omitempty"`
	Blocked  Blocked `yaml:"blocked,omitempty"  json:"blocked,omitempty"`
	P1       int     `yaml:"p1,omitempty"       json:"p1,omitempty"`
	P2       int     `yaml:"p2,omitempty"       json:"p2,omitempty"`
}

// ScenarioSet 批次檔根節點
type ScenarioSet struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// DecodeScenariosYAML 讀取 YAML 批次檔。
// 嚴格模式：多寫/拼錯欄位就報錯。
func DecodeScenariosYAML(data []byte) (*ScenarioSet, error) {
	set := new(ScenarioSet)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(set); err != nil {
		if e, ok := errs.AsErr(err); ok {
			return nil, e
		}
		return nil, errs.WrapWarn(err, "spec.scenario : yaml decode failed")
	}
	if err := set.valid(); err != nil {
		return nil, err
	}
	return set, nil
}

// DecodeScenariosJSON 讀取 JSON 批次檔，未知欄位一律拒絕。
func DecodeScenariosJSON(data []byte) (*ScenarioSet, error) {
	set := new(ScenarioSet)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(set); err != nil {
		if e, ok := errs.AsErr(err); ok {
			return nil, e
		}
		return nil, errs.WrapWarn(err, "spec.scenario : json decode failed")
	}
	if err := set.valid(); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *ScenarioSet) valid() error {
	if len(s.Scenarios) == 0 {
		return errs.InvalidArgf("empty scenarios")
	}
	for i := range s.Scenarios {
		sc := &s.Scenarios[i]
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("#%d", i+1)
		}
		if err := sc.Valid(); err != nil {
			return errs.WrapWithExtra(err, "invalid scenario", sc.Name)
		}
	}
	return nil
}

// Valid 檢查該查詢種類所需的參數
func (sc *Scenario) Valid() error {
	k, err := ParseKind(string(sc.Kind))
	if err != nil {
		return err
	}
	sc.Kind = k
	if !sc.Blocked.Valid() {
		return errs.InvalidArgf("blocked mask %#x out of range", sc.Blocked.Mask())
	}
	switch sc.Kind {
	case KindSum:
		_, err = NewSum(sc.Sum)
	case KindEntry:
		// 任何合法封鎖集合（含空集合）都可以
	case KindHit, KindShot:
		_, err = NewDistance(sc.Distance)
	case KindBearOff:
		_, err = NewCheckers(sc.P1, sc.P2)
	}
	return err
}
