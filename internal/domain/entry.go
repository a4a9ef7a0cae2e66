package domain

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-coach-api/pkg/utils"
)

var (
	ErrInvalidMoney    = errors.New("invalid money amount")
	ErrInvalidCount    = errors.New("invalid count")
	ErrInvalidDate     = errors.New("invalid date")
	ErrMissingPlanName = errors.New("plan name is required")
)

// Entry é o registro diário de vendas. Imutável depois de criado.
type Entry struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	VoiceLines  int       `json:"voiceLines"`
	BTS         int       `json:"bts"`
	IoT         int       `json:"iot"`
	HSI         int       `json:"hsi"`
	Accessories Money     `json:"accessories"`
	Protection  int       `json:"protection"`
	PlanName    string    `json:"planName"`
	MRC         Money     `json:"mrc"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Lines soma os quatro canais do registro
func (e *Entry) Lines() int {
	return e.VoiceLines + e.BTS + e.IoT + e.HSI
}

// FormValue aceita tanto "10" quanto 10 no JSON do formulário
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}

	*v = FormValue(data)
	return nil
}

// EntryForm é o formulário bruto enviado pelo dashboard
type EntryForm struct {
	Date        FormValue `json:"date"`
	VoiceLines  FormValue `json:"voiceLines"`
	BTS         FormValue `json:"bts"`
	IoT         FormValue `json:"iot"`
	HSI         FormValue `json:"hsi"`
	Accessories FormValue `json:"accessories"`
	Protection  FormValue `json:"protection"`
	PlanName    FormValue `json:"planName"`
	MRC         FormValue `json:"mrc"`
}

// FieldError indica qual campo do formulário falhou na validação
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate converte o formulário em um Entry sem ID.
// Retorna *FieldError no primeiro campo inválido.
func (f EntryForm) Validate() (*Entry, error) {
	date, err := parseEntryDate(string(f.Date))
	if err != nil {
		return nil, &FieldError{Field: "date", Err: err}
	}

	entry := &Entry{Date: date}

	counts := []struct {
		field string
		raw   FormValue
		dst   *int
	}{
		{"voiceLines", f.VoiceLines, &entry.VoiceLines},
		{"bts", f.BTS, &entry.BTS},
		{"iot", f.IoT, &entry.IoT},
		{"hsi", f.HSI, &entry.HSI},
		{"protection", f.Protection, &entry.Protection},
	}
	for _, c := range counts {
		n, err := parseCount(string(c.raw))
		if err != nil {
			return nil, &FieldError{Field: c.field, Err: err}
		}
		*c.dst = n
	}

	if entry.Accessories, err = ParseMoney(string(f.Accessories)); err != nil {
		return nil, &FieldError{Field: "accessories", Err: err}
	}

	entry.PlanName = strings.TrimSpace(string(f.PlanName))
	if entry.PlanName == "" {
		return nil, &FieldError{Field: "planName", Err: ErrMissingPlanName}
	}

	if entry.MRC, err = ParseMoney(string(f.MRC)); err != nil {
		return nil, &FieldError{Field: "mrc", Err: err}
	}

	return entry, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidCount
	}
	return n, checkCount(n)
}

// checkCount limita as contagens ao INTEGER do banco
func checkCount(n int) error {
	if n < 0 || n > math.MaxInt32 {
		return ErrInvalidCount
	}
	return nil
}

// Validate aplica ao registro já decodificado as regras do formulário.
// Os valores monetários são checados no UnmarshalJSON de Money.
func (e *Entry) Validate() error {
	if _, err := parseEntryDate(e.Date); err != nil {
		return &FieldError{Field: "date", Err: err}
	}

	counts := []struct {
		field string
		value int
	}{
		{"voiceLines", e.VoiceLines},
		{"bts", e.BTS},
		{"iot", e.IoT},
		{"hsi", e.HSI},
		{"protection", e.Protection},
	}
	for _, c := range counts {
		if err := checkCount(c.value); err != nil {
			return &FieldError{Field: c.field, Err: err}
		}
	}

	if strings.TrimSpace(e.PlanName) == "" {
		return &FieldError{Field: "planName", Err: ErrMissingPlanName}
	}

	return nil
}

func parseEntryDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidDate
	}

	date, err := utils.ParseDate(s)
	if err != nil {
		return "", ErrInvalidDate
	}

	return date.Format(time.DateOnly), nil
}
