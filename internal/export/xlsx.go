package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

const maxSheetName = 31

var bookingColumns = []string{
	"ID", "Date", "Time", "Duration (min)", "Status",
	"Customer", "Email", "Phone", "Service ID", "Created at",
}

// sheetWriter appends rows to one sheet of an excelize workbook.
type sheetWriter struct {
	file  *excelize.File
	sheet string
	row   int
}

// sheetName strips the characters Excel rejects and truncates to the
// 31-rune limit.
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]'`, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(name))

	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	if name == "" {
		return "Bookings"
	}
	return name
}

func newSheetWriter(name string) (*sheetWriter, error) {
	name = sheetName(name)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	return &sheetWriter{file: f, sheet: name, row: 1}, nil
}

func (w *sheetWriter) writeHeader(columns []string) error {
	if err := w.writeRow(toAny(columns)); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		start, _ := excelize.CoordinatesToCellName(1, 1)
		end, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = w.file.SetCellStyle(w.sheet, start, end, style)
	}
	return w.file.SetPanes(w.sheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})
}

func (w *sheetWriter) writeRow(values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.sheet, cell, v); err != nil {
			return err
		}
	}
	w.row++
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// WriteBookings renders a salon's bookings as an .xlsx workbook with one
// sheet named after the salon.
func WriteBookings(w io.Writer, salonName string, bookings []models.Booking) error {
	sw, err := newSheetWriter(salonName)
	if err != nil {
		return err
	}
	defer sw.file.Close()

	if err := sw.writeHeader(bookingColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, b := range bookings {
		phone := ""
		if b.CustomerPhone != nil {
			phone = *b.CustomerPhone
		}
		row := []any{
			b.ID, b.BookingDate, b.BookingTime, b.Duration, b.Status,
			b.CustomerName, b.CustomerEmail, phone, b.ServiceID,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := sw.writeRow(row); err != nil {
			return fmt.Errorf("write booking %d: %w", b.ID, err)
		}
	}

	_ = sw.file.SetColWidth(sw.sheet, "A", "J", 16)

	if err := sw.file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
