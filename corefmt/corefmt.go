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

// Package corefmt 放二進位快照與文字傳輸之間的轉換。
//
// Session 快照是幾個 byte 的 payload，先包成長度前綴的 frame，
// 再轉成 URL-safe base64，讓它能放進 query string 或 JSON。
package corefmt

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/zintix-labs/bgodds/errs"
)

func EncodeBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func DecodeBase64URL(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errs.WrapWarn(err, "decode base64url failed")
	}
	return b, nil
}

// EncodeBlobFrame
//
//	frame := uvarint(len(payload)) || payload
func EncodeBlobFrame(payload []byte) []byte {
	var hdr [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(hdr[:], uint64(len(payload)))

	out := make([]byte, 0, n+len(payload))
	out = append(out, hdr[:n]...)
	out = append(out, payload...)
	return out
}

// DecodeBlobFrame 解開 EncodeBlobFrame 產生的 frame；長度不符或有多餘資料都視為錯誤。
func DecodeBlobFrame(frame []byte) ([]byte, error) {
	n, size := binary.Uvarint(frame)
	if size <= 0 {
		return nil, errs.NewWarn("decode blob frame failed: invalid varint length")
	}
	rest := uint64(len(frame) - size)
	if rest < n {
		return nil, errs.NewWarn("decode blob frame failed: truncated payload")
	}
	if rest > n {
		return nil, errs.NewWarn("decode blob frame failed: trailing bytes")
	}
	out := make([]byte, n)
	copy(out, frame[size:])
	return out, nil
}
