package card

import (
	"fmt"
	"strings"

	"github.com/palemoky/maria/internal/apperrors"
)

// Suit 定义花色，顺序即 card id 的高位：梅花、方块、红心、黑桃
type Suit int

// Rank 定义点数，2 最小，A 最大
type Rank int

const (
	Clubs    Suit = iota // 梅花
	Diamonds             // 方块
	Hearts               // 红心
	Spades               // 黑桃
)

// NumSuits 花色数量
const NumSuits = 4

// suitLetters 花色字母映射表
var suitLetters = map[Suit]string{
	Clubs:    "C",
	Diamonds: "D",
	Hearts:   "H",
	Spades:   "S",
}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

func (s Suit) String() string {
	if letter, ok := suitLetters[s]; ok {
		return letter
	}
	return "?"
}

// Symbol 返回花色符号
func (s Suit) Symbol() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// IsRed 红心和方块是红色
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

const (
	Rank2 Rank = iota
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

// NumRanks 每种花色的牌数
const NumRanks = 13

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "T",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// charToRank 用于快速查找字符对应的 Rank
var charToRank = map[rune]Rank{
	'2': Rank2,
	'3': Rank3,
	'4': Rank4,
	'5': Rank5,
	'6': Rank6,
	'7': Rank7,
	'8': Rank8,
	'9': Rank9,
	'T': Rank10,
	'J': RankJ,
	'Q': RankQ,
	'K': RankK,
	'A': RankA,
}

// charToSuit 用于快速查找字符对应的 Suit
var charToSuit = map[rune]Suit{
	'C': Clubs,
	'D': Diamonds,
	'H': Hearts,
	'S': Spades,
}

func RankFromChar(char rune) (Rank, error) {
	if rank, ok := charToRank[char]; ok {
		return rank, nil
	}
	return -1, fmt.Errorf("无法识别的点数: %c", char)
}

func SuitFromChar(char rune) (Suit, error) {
	if suit, ok := charToSuit[char]; ok {
		return suit, nil
	}
	return -1, fmt.Errorf("无法识别的花色: %c", char)
}

// DeckSize 一副牌的张数
const DeckSize = NumSuits * NumRanks

// Card 定义一张牌，按值比较
type Card struct {
	Suit Suit
	Rank Rank
}

// ID 返回 0-51 的稠密编号：13*花色 + 点数
func (c Card) ID() int {
	return NumRanks*int(c.Suit) + int(c.Rank)
}

// String 返回 "QS" 这样的短格式
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Symbol 返回 "Q♠" 这样的展示格式
func (c Card) Symbol() string {
	rank := c.Rank.String()
	if c.Rank == Rank10 {
		rank = "10"
	}
	return rank + c.Suit.Symbol()
}

// Points 返回这张牌的分值：红心 -1，黑桃 Q -13，其余 0
func (c Card) Points() int {
	switch {
	case c.Suit == Hearts:
		return -1
	case c == QueenOfSpades:
		return -13
	default:
		return 0
	}
}

// IsPoint 是否分牌（红心或黑桃 Q）
func (c Card) IsPoint() bool {
	return c.Points() != 0
}

var (
	// TwoOfClubs 每局的首攻牌
	TwoOfClubs = Card{Suit: Clubs, Rank: Rank2}
	// QueenOfSpades 黑桃 Q
	QueenOfSpades = Card{Suit: Spades, Rank: RankQ}
)

// canonical 按 card id 排列的标准牌组：2C…AC,2D…AD,2H…AH,2S…AS，只读
var canonical = func() [DeckSize]Card {
	var deck [DeckSize]Card
	for s := Clubs; s <= Spades; s++ {
		for r := Rank2; r <= RankA; r++ {
			c := Card{Suit: s, Rank: r}
			deck[c.ID()] = c
		}
	}
	return deck
}()

// FromID 根据编号返回对应的牌
func FromID(id int) (Card, error) {
	if id < 0 || id >= DeckSize {
		return Card{}, fmt.Errorf("card id %d: %w", id, apperrors.ErrInvalidAction)
	}
	return canonical[id], nil
}

// MustFromID 编号非法时 panic，仅用于常量和测试
func MustFromID(id int) Card {
	c, err := FromID(id)
	if err != nil {
		panic(err)
	}
	return c
}

// Deck 返回标准牌组的一份新拷贝
func Deck() []Card {
	deck := make([]Card, DeckSize)
	copy(deck, canonical[:])
	return deck
}

// Parse 解析 "QS"、"10H"、"th" 这样的输入
func Parse(input string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, "10", "T")
	runes := []rune(s)
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("无法识别的牌: %q", input)
	}
	rank, err := RankFromChar(runes[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := SuitFromChar(runes[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// MustParse 解析失败时 panic，仅用于测试和常量
func MustParse(input string) Card {
	c, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return c
}
