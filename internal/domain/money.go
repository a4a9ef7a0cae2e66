package domain

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money é um valor monetário com duas casas decimais.
// Scan e Value vêm do decimal embutido.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// moneyPattern cabe em NUMERIC(12,2): até 10 dígitos inteiros e 2 decimais.
// Notação exponencial e sinais ficam de fora.
var moneyPattern = regexp.MustCompile(`^\d{1,10}([.,]\d{1,2})?$`)

// ParseMoney aceita "12.34" ou "12,34" e rejeita valores negativos,
// com mais de duas casas decimais ou maiores que a coluna do banco.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if !moneyPattern.MatchString(s) {
		return Money{}, ErrInvalidMoney
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return Money{}, ErrInvalidMoney
	}

	return Money{Decimal: d}, nil
}

func (m Money) String() string {
	return m.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

// UnmarshalJSON aplica as mesmas regras de ParseMoney a "2.50" ou 2.5
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Money{}
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return ErrInvalidMoney
		}
		raw = unquoted
	}

	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
