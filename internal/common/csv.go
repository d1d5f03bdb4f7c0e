// Package common provides the CSV export shared by commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"jeffrey-jian/spendsplit/internal/config"
	"jeffrey-jian/spendsplit/internal/ledger"
	"jeffrey-jian/spendsplit/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = config.Logger

// Delimiter is the CSV output delimiter, configurable via the csv.delimiter
// configuration key.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ShareRow is one participant's derived share of one transaction, flattened
// for CSV output. Weight keeps the exact text form; Share is the rounded
// monetary rendering.
type ShareRow struct {
	Timestamp   string          `csv:"Timestamp"`
	Description string          `csv:"Description"`
	Payee       string          `csv:"Payee"`
	Participant string          `csv:"Participant"`
	Weight      string          `csv:"Weight"`
	Share       decimal.Decimal `csv:"Share"`
}

// BuildShareRows flattens every transaction in the view into one row per
// portion, in ledger order with portions in insertion order.
func BuildShareRows(view ledger.View, decimalPlaces int) ([]ShareRow, error) {
	var rows []ShareRow
	for i := 0; i < view.Len(); i++ {
		t := view.At(i)
		for _, p := range t.Portions() {
			share, err := t.Share(p.PersonName)
			if err != nil {
				return nil, fmt.Errorf("error deriving share: %w", err)
			}
			weight, err := p.Weight.MarshalText()
			if err != nil {
				return nil, fmt.Errorf("error encoding weight: %w", err)
			}
			rows = append(rows, ShareRow{
				Timestamp:   t.Timestamp().Format(models.TimestampLayout),
				Description: t.Description(),
				Payee:       t.Payee(),
				Participant: p.PersonName,
				Weight:      string(weight),
				Share:       share.Decimal(decimalPlaces),
			})
		}
	}
	return rows, nil
}

// WriteShareRowsToCSV writes share rows to a CSV file using the configured
// delimiter.
func WriteShareRowsToCSV(rows []ShareRow, csvFile string) error {
	log.WithField("file", csvFile).Info("Writing shares CSV file")

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = Delimiter
		return gocsv.NewSafeCSVWriter(writer)
	})

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		log.WithError(err).Error("Failed to write CSV file")
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	log.WithField("count", len(rows)).Info("Successfully wrote shares CSV")
	return nil
}
