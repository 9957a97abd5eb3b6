// Package cnab decodes fixed-width CNAB transaction lines.
package cnab

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
)

// Field layout, in characters.
const (
	posType   = 0
	lenType   = 1
	posDate   = 1
	lenDate   = 8
	posAmount = 9
	lenAmount = 10
	posCPF    = 19
	lenCPF    = 11
	posCard   = 30
	lenCard   = 12
	posTime   = 42
	lenTime   = 6
	posOwner  = 48
	lenOwner  = 14
	posStore  = 62
	lenStore  = 19

	// MinLineLength is the shortest line that still reaches the store name.
	MinLineLength = posStore
	// LineLength is the nominal width of a full record.
	LineLength = posStore + lenStore

	dateTimeLayout = "20060102150405"
)

// Record holds the fields of one decoded line. No semantic validation
// has been applied.
type Record struct {
	Type       domain.TransactionType
	Date       time.Time
	Amount     decimal.Decimal
	CPF        string
	CardNumber string
	OwnerName  string
	StoreName  string
}

// MalformedLineError reports a line that could not be decoded.
type MalformedLineError struct {
	LineNumber int
	Field      string
	Reason     string
	Line       string
}

func (e *MalformedLineError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %s", e.LineNumber, e.Reason)
	}
	return fmt.Sprintf("line %d: field %s: %s", e.LineNumber, e.Field, e.Reason)
}

type Decoder struct {
	loc *time.Location
}

// NewDecoder returns a decoder that reads date and time fields at a fixed
// UTC offset in hours.
func NewDecoder(offsetHours int) *Decoder {
	name := fmt.Sprintf("UTC%+03d:00", offsetHours)
	return &Decoder{loc: time.FixedZone(name, offsetHours*3600)}
}

func (d *Decoder) Location() *time.Location {
	return d.loc
}

// Decode splits line by character position. lineNumber is only used in errors.
func (d *Decoder) Decode(line string, lineNumber int) (Record, error) {
	runes := []rune(line)
	if len(runes) < MinLineLength {
		return Record{}, &MalformedLineError{
			LineNumber: lineNumber,
			Reason:     fmt.Sprintf("line has %d characters, need at least %d", len(runes), MinLineLength),
			Line:       line,
		}
	}

	fail := func(field, reason string) (Record, error) {
		return Record{}, &MalformedLineError{LineNumber: lineNumber, Field: field, Reason: reason, Line: line}
	}

	typeRaw := slice(runes, posType, lenType)
	if !isDigits(typeRaw) {
		return fail("type", "must be numeric")
	}
	code, _ := strconv.Atoi(typeRaw)
	if code == 0 {
		return fail("type", "must be between 1 and 9")
	}

	dateRaw := slice(runes, posDate, lenDate)
	if !isDigits(dateRaw) {
		return fail("date", "must be numeric")
	}
	timeRaw := slice(runes, posTime, lenTime)
	if !isDigits(timeRaw) {
		return fail("time", "must be numeric")
	}
	date, err := time.ParseInLocation(dateTimeLayout, dateRaw+timeRaw, d.loc)
	if err != nil {
		return fail("date", err.Error())
	}

	amountRaw := slice(runes, posAmount, lenAmount)
	if !isDigits(amountRaw) {
		return fail("amount", "must be numeric")
	}
	cents, err := strconv.ParseInt(amountRaw, 10, 64)
	if err != nil {
		return fail("amount", err.Error())
	}

	storeLen := lenStore
	if rest := len(runes) - posStore; rest < storeLen {
		storeLen = rest
	}

	return Record{
		Type:       domain.TransactionType(code),
		Date:       date,
		Amount:     decimal.New(cents, -2),
		CPF:        slice(runes, posCPF, lenCPF),
		CardNumber: strings.TrimSpace(slice(runes, posCard, lenCard)),
		OwnerName:  strings.TrimSpace(slice(runes, posOwner, lenOwner)),
		StoreName:  strings.TrimSpace(slice(runes, posStore, storeLen)),
	}, nil
}

// Encode writes rec back into the fixed layout, padding text fields with
// spaces. Amounts are written as absolute cents.
func (d *Decoder) Encode(rec Record) string {
	date := rec.Date.In(d.loc)
	cents := rec.Amount.Abs().Shift(2).IntPart()

	var b strings.Builder
	b.WriteString(strconv.Itoa(int(rec.Type)))
	b.WriteString(date.Format("20060102"))
	fmt.Fprintf(&b, "%010d", cents)
	b.WriteString(pad(rec.CPF, lenCPF))
	b.WriteString(pad(rec.CardNumber, lenCard))
	b.WriteString(date.Format("150405"))
	b.WriteString(pad(rec.OwnerName, lenOwner))
	b.WriteString(pad(rec.StoreName, lenStore))
	return b.String()
}

// HashLine fingerprints a raw line for deduplication.
func HashLine(line string) string {
	sum := sha256.Sum256([]byte(line))
	return hex.EncodeToString(sum[:])
}

func slice(runes []rune, pos, length int) string {
	return string(runes[pos : pos+length])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// pad truncates or right-pads s to exactly width characters.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
