// Package quotes holds the static quote list appended to every check-in report.
package quotes

import (
	"math/rand"
	"slices"
)

// Quote is a short saying and who it is attributed to.
type Quote struct {
	Text   string
	Author string
}

var all = []Quote{
	{Text: "人生不是等待暴风雨过去，而是学会在雨中跳舞。", Author: "维维安·格林"},
	{Text: "我思故我在。", Author: "笛卡尔"},
	{Text: "你必须成为你希望这个世界出现的改变。", Author: "甘地"},
	{Text: "成功不是最终的，失败不是致命的，继续前进的勇气才是最重要的。", Author: "丘吉尔"},
	{Text: "真正的聪明，是知道自己无知。", Author: "苏格拉底"},
	{Text: "Stay hungry, stay foolish.", Author: "乔布斯"},
	{Text: "你若盛开，蝴蝶自来；你若精彩，天自安排。", Author: "网络"},
	{Text: "我们都有属于自己的时区，人生不必攀比。", Author: "网络"},
	{Text: "被讨厌的勇气，是自由的开端。", Author: "岸见一郎"},
	{Text: "给我一个支点，我可以撬动整个地球。", Author: "阿基米德"},
}

// All returns a copy of the quote list.
func All() []Quote {
	return slices.Clone(all)
}

// Picker selects quotes uniformly at random.
type Picker struct {
	intN func(n int) int
}

// NewPicker returns a Picker drawing indexes from intN, which must return a value
// in [0, n). A nil intN uses math/rand.
func NewPicker(intN func(n int) int) *Picker {
	if intN == nil {
		intN = rand.Intn
	}
	return &Picker{intN: intN}
}

// Pick returns one quote from the list. There is no uniqueness guarantee across calls.
func (p *Picker) Pick() Quote {
	return all[p.intN(len(all))]
}
