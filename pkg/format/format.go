// Package format holds the presentation helpers shared by the panel views:
// BRL money, pt-BR dates, month buckets and generated passwords.
package format

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006, 15:04:05"
	MonthLayout    = "2006-01"

	passwordCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"
)

var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

var printer = message.NewPrinter(language.BrazilianPortuguese)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Money formats v as "R$ 1.234.567,89".
func Money(v float64) string {
	return "R$ " + printer.Sprint(number.Decimal(v, number.Scale(2)))
}

// Date formats a civil date as DD/MM/YYYY, "-" for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}

func DateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateTimeLayout)
}

// RandomPassword draws n characters from an alphabet without look-alike glyphs.
func RandomPassword(n int) (string, error) {
	if n <= 0 {
		n = 8
	}
	max := big.NewInt(int64(len(passwordCharset)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordCharset[idx.Int64()]
	}
	return string(out), nil
}

type MonthOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MonthLabel renders "Janeiro de 2024".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s de %d", monthNames[t.Month()-1], t.Year())
}

// Months lists the last n months, current month first.
func Months(now time.Time, n int) []MonthOption {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]MonthOption, 0, n)
	for i := 0; i < n; i++ {
		m := first.AddDate(0, -i, 0)
		out = append(out, MonthOption{Value: m.Format(MonthLayout), Label: MonthLabel(m)})
	}
	return out
}

// MonthRange returns the first instant and the last second (23:59:59 of the
// last calendar day) of a YYYY-MM bucket.
func MonthRange(month string, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	m, err := time.ParseInLocation(MonthLayout, month, loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	start := time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, loc)
	lastDay := time.Date(m.Year(), m.Month()+1, 0, 0, 0, 0, 0, loc).Day()
	end := time.Date(m.Year(), m.Month(), lastDay, 23, 59, 59, 0, loc)
	return start, end, nil
}
