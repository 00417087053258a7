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

// Package reference 收錄已出版的擲骰機率表，作為計算器的回歸基準。
//
// 計算結果一律由 sdk/calc 即時算出；這裡的數字只用來比對。
// Verify 會列出所有不一致之處，其中下棋的兩擲機率是已知差異：
// 出版數字是完整多擲的精確值，計算器採用獨立試驗的近似公式。
package reference

// EntryFigure 上場表的一列（依空點數量）
type EntryFigure struct {
	Open    int
	Ways    int
	Percent int
	Odds    string
}

// HitFigure 直接擊中表的一列
type HitFigure struct {
	Distance int
	Ways     int
	Percent  int
	Odds     string
}

// BearOffFigure 下棋表的一列。Key 沿用出版時的寫法（"6-4"、"5"），P2 為 0 代表單顆。
type BearOffFigure struct {
	Total    int
	Key      string
	P1, P2   int
	Ways     int
	Percent  int
	TwoRolls int
}

// Entry 空點數量 0..6
var Entry = []EntryFigure{
	{Open: 0, Ways: 0, Percent: 0, Odds: "Cannot enter"},
	{Open: 1, Ways: 11, Percent: 31, Odds: "25 to 11 against"},
	{Open: 2, Ways: 20, Percent: 56, Odds: "5 to 4 in favor"},
	{Open: 3, Ways: 27, Percent: 75, Odds: "3 to 1 in favor"},
	{Open: 4, Ways: 32, Percent: 89, Odds: "8 to 1 in favor"},
	{Open: 5, Ways: 35, Percent: 97, Odds: "35 to 1 in favor"},
	{Open: 6, Ways: 36, Percent: 100, Odds: "Always enters"},
}

// Hit 距離 1..12，Odds 為「不被打 : 被打」
var Hit = []HitFigure{
	{1, 11, 31, "25 to 11"},
	{2, 12, 33, "2 to 1"},
	{3, 14, 39, "11 to 7"},
	{4, 15, 42, "7 to 5"},
	{5, 15, 42, "7 to 5"},
	{6, 17, 47, "19 to 17"},
	{7, 6, 17, "5 to 1"},
	{8, 6, 17, "5 to 1"},
	{9, 5, 14, "31 to 5"},
	{10, 3, 8, "11 to 1"},
	{11, 2, 6, "17 to 1"},
	{12, 3, 8, "11 to 1"},
}

// BearOff 依總點數由大到小
var BearOff = []BearOffFigure{
	{12, "6-6", 6, 6, 4, 11, 78},
	{11, "6-5", 6, 5, 6, 17, 88},
	{10, "5-5", 5, 5, 6, 17, 92},
	{10, "6-4", 6, 4, 8, 22, 93},
	{9, "5-4", 5, 4, 10, 28, 96},
	{9, "6-3", 6, 3, 10, 28, 97},
	{8, "4-4", 4, 4, 11, 31, 98},
	{8, "6-2", 6, 2, 13, 36, 99},
	{8, "5-3", 5, 3, 14, 39, 99},
	{7, "6-1", 6, 1, 15, 42, 99},
	{7, "4-3", 4, 3, 17, 47, 99},
	{7, "5-2", 5, 2, 19, 53, 99},
	{6, "3-3", 3, 3, 17, 47, 100},
	{6, "5-1", 5, 1, 23, 64, 100},
	{6, "4-2", 4, 2, 23, 64, 100},
	{6, "6", 6, 0, 27, 75, 100},
	{5, "3-2", 3, 2, 25, 69, 100},
	{5, "4-1", 4, 1, 29, 81, 100},
	{5, "5", 5, 0, 31, 86, 100},
	{4, "2-2", 2, 2, 26, 72, 100},
	{4, "3-1", 3, 1, 34, 94, 100},
	{4, "4", 4, 0, 34, 94, 100},
	{3, "2-1", 2, 1, 36, 100, 100},
	{3, "3", 3, 0, 36, 100, 100},
	{2, "1-1", 1, 1, 36, 100, 100},
	{2, "2", 2, 0, 36, 100, 100},
}
