// Package factory demonstrates the factory method pattern on receipt exporting.
//
// The caller asks for an Exporter by format name and stays unaware of the
// concrete implementation behind it. New is the closed-world factory over the
// built-in formats, Registry is the open variant where new formats can be
// plugged in at runtime.
package factory

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.llib.dev/exemplar/pkg/errorkit"
)

// Receipt is the document every exporter renders.
type Receipt struct {
	Number   string
	IssuedAt time.Time
	Items    []ReceiptItem
}

type ReceiptItem struct {
	Name      string
	Quantity  int
	UnitCents int
	Currency  string
}

func (item ReceiptItem) TotalCents() int { return item.Quantity * item.UnitCents }

func (r Receipt) TotalCents() int {
	var total int
	for _, item := range r.Items {
		total += item.TotalCents()
	}
	return total
}

// Exporter is the role interface every receipt format implements.
type Exporter interface {
	// ContentType names the MIME type of the produced document.
	ContentType() string
	// Export renders the receipt into the writer.
	Export(w io.Writer, r Receipt) error
}

// Format identifies a receipt export format.
type Format string

const (
	FormatJSON      Format = "json"
	FormatCSV       Format = "csv"
	FormatPlainText Format = "text"
)

const ErrUnknownFormat errorkit.Error = "unknown receipt export format"

// New is the factory method of the package:
// it returns the Exporter implementation belonging to the format.
func New(format Format) (Exporter, error) {
	switch format {
	case FormatJSON:
		return jsonExporter{}, nil
	case FormatCSV:
		return csvExporter{}, nil
	case FormatPlainText:
		return textExporter{}, nil
	default:
		return nil, ErrUnknownFormat.F("%q, supported formats: %s",
			format, strings.Join(formatNames(builtInFormats()), ", "))
	}
}

func builtInFormats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatPlainText}
}

func formatNames(formats []Format) []string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}

type jsonExporter struct{}

func (jsonExporter) ContentType() string { return "application/json" }

func (jsonExporter) Export(w io.Writer, r Receipt) error {
	type itemDTO struct {
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
		UnitCents int    `json:"unit_cents"`
		Currency  string `json:"currency"`
	}
	type receiptDTO struct {
		Number     string    `json:"number"`
		IssuedAt   time.Time `json:"issued_at"`
		Items      []itemDTO `json:"items"`
		TotalCents int       `json:"total_cents"`
	}
	dto := receiptDTO{
		Number:     r.Number,
		IssuedAt:   r.IssuedAt,
		TotalCents: r.TotalCents(),
	}
	for _, item := range r.Items {
		dto.Items = append(dto.Items, itemDTO(item))
	}
	enc := json.NewEncoder(w)
	return enc.Encode(dto)
}

type csvExporter struct{}

func (csvExporter) ContentType() string { return "text/csv" }

func (csvExporter) Export(w io.Writer, r Receipt) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "quantity", "unit_cents", "total_cents", "currency"}); err != nil {
		return err
	}
	for _, item := range r.Items {
		record := []string{
			item.Name,
			strconv.Itoa(item.Quantity),
			strconv.Itoa(item.UnitCents),
			strconv.Itoa(item.TotalCents()),
			item.Currency,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type textExporter struct{}

func (textExporter) ContentType() string { return "text/plain" }

func (textExporter) Export(w io.Writer, r Receipt) error {
	if _, err := fmt.Fprintf(w, "receipt %s (%s)\n", r.Number, r.IssuedAt.Format("2006-01-02")); err != nil {
		return err
	}
	for _, item := range r.Items {
		_, err := fmt.Fprintf(w, "  %dx %s @ %s = %s\n", item.Quantity, item.Name,
			formatCents(item.UnitCents, item.Currency), formatCents(item.TotalCents(), item.Currency))
		if err != nil {
			return err
		}
	}
	currency := ""
	if 0 < len(r.Items) {
		currency = r.Items[0].Currency
	}
	_, err := fmt.Fprintf(w, "  total: %s\n", formatCents(r.TotalCents(), currency))
	return err
}

func formatCents(cents int, currency string) string {
	return fmt.Sprintf("%d.%02d %s", cents/100, cents%100, currency)
}

// Registry is the open ended variant of the factory:
// formats register themselves, the lookup logic stays unchanged.
type Registry struct {
	exporters map[Format]Exporter
}

// Register adds a format to the registry, overwriting any previous registration.
func (r *Registry) Register(format Format, exporter Exporter) {
	if r.exporters == nil {
		r.exporters = make(map[Format]Exporter)
	}
	r.exporters[format] = exporter
}

// New returns the registered Exporter belonging to the format.
func (r *Registry) New(format Format) (Exporter, error) {
	exporter, ok := r.exporters[format]
	if !ok {
		return nil, ErrUnknownFormat.F("%q, supported formats: %s",
			format, strings.Join(formatNames(r.Formats()), ", "))
	}
	return exporter, nil
}

// Formats lists the registered formats in alphabetical order.
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.exporters))
	for f := range r.exporters {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
