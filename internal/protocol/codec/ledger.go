package codec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
)

// 记录表的二进制格式（protobuf wire format）：
//
//	message Ledger { repeated Move moves = 1; }
//	message Move {
//	  uint32 kind   = 1;
//	  uint32 seat   = 2;
//	  uint32 action = 3; // 出牌/传牌的动作编号
//	  bytes  deck   = 4; // 发牌记录的洗牌顺序，每个字节一个 card id
//	}
const (
	fieldLedgerMove protowire.Number = 1

	fieldMoveKind   protowire.Number = 1
	fieldMoveSeat   protowire.Number = 2
	fieldMoveAction protowire.Number = 3
	fieldMoveDeck   protowire.Number = 4
)

// EncodeMoves 将记录表编码为字节
func EncodeMoves(moves []action.Move) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	var out []byte
	for i, m := range moves {
		msg, err := appendMove((*buf)[:0], m)
		if err != nil {
			return nil, fmt.Errorf("encode move %d: %w", i, err)
		}
		*buf = msg
		out = protowire.AppendTag(out, fieldLedgerMove, protowire.BytesType)
		out = protowire.AppendBytes(out, msg)
	}
	return out, nil
}

func appendMove(b []byte, m action.Move) ([]byte, error) {
	if !m.Seat.Valid() {
		return nil, apperrors.ErrInvalidSeat
	}
	b = protowire.AppendTag(b, fieldMoveKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Kind))
	b = protowire.AppendTag(b, fieldMoveSeat, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Seat))

	switch m.Kind {
	case action.DealHandMove:
		b = protowire.AppendTag(b, fieldMoveDeck, protowire.BytesType)
		b = protowire.AppendBytes(b, EncodeCards(m.ShuffledDeck))
	case action.PlayCardMove, action.TradeCardMove:
		id := m.Action.ID()
		if id < 0 {
			return nil, fmt.Errorf("%s: %w", m.Action.Kind, apperrors.ErrUnknownAction)
		}
		b = protowire.AppendTag(b, fieldMoveAction, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(id))
	default:
		return nil, fmt.Errorf("move kind %d: %w", m.Kind, apperrors.ErrUnknownAction)
	}
	return b, nil
}

// DecodeMoves 从字节还原记录表，忽略未知字段
func DecodeMoves(data []byte) ([]action.Move, error) {
	var moves []action.Move
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("decode ledger: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if num != fieldLedgerMove || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("decode ledger: %w", protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		msg, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("decode ledger: %w", protowire.ParseError(n))
		}
		data = data[n:]

		m, err := decodeMove(msg)
		if err != nil {
			return nil, fmt.Errorf("decode move %d: %w", len(moves), err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func decodeMove(data []byte) (action.Move, error) {
	var (
		m        action.Move
		actionID = -1
		deck     []byte
	)
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return m, protowire.ParseError(n)
		}
		data = data[n:]

		switch {
		case typ == protowire.VarintType && num == fieldMoveKind,
			typ == protowire.VarintType && num == fieldMoveSeat,
			typ == protowire.VarintType && num == fieldMoveAction:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return m, protowire.ParseError(n)
			}
			data = data[n:]
			switch num {
			case fieldMoveKind:
				m.Kind = action.MoveKind(v)
			case fieldMoveSeat:
				m.Seat = player.Seat(v)
			case fieldMoveAction:
				actionID = int(v)
			}
		case typ == protowire.BytesType && num == fieldMoveDeck:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return m, protowire.ParseError(n)
			}
			data = data[n:]
			deck = v
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return m, protowire.ParseError(n)
			}
			data = data[n:]
		}
	}

	if !m.Seat.Valid() {
		return m, apperrors.ErrInvalidSeat
	}
	switch m.Kind {
	case action.DealHandMove:
		cards, err := DecodeCards(deck)
		if err != nil {
			return m, err
		}
		m.ShuffledDeck = cards
	case action.PlayCardMove, action.TradeCardMove:
		a, err := action.FromID(actionID)
		if err != nil {
			return m, err
		}
		if action.NewPlayerMove(m.Seat, a).Kind != m.Kind {
			return m, fmt.Errorf("action %d does not match move kind %d: %w", actionID, m.Kind, apperrors.ErrInvalidAction)
		}
		m.Action = a
	default:
		return m, fmt.Errorf("move kind %d: %w", m.Kind, apperrors.ErrUnknownAction)
	}
	return m, nil
}

// EncodeCards 每张牌编码为一个字节的 card id
func EncodeCards(cards []card.Card) []byte {
	out := make([]byte, len(cards))
	for i, c := range cards {
		out[i] = byte(c.ID())
	}
	return out
}

// DecodeCards EncodeCards 的逆操作
func DecodeCards(data []byte) ([]card.Card, error) {
	cards := make([]card.Card, len(data))
	for i, id := range data {
		c, err := card.FromID(int(id))
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}
