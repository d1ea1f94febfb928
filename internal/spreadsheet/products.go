package spreadsheet

import (
	"io"

	"github.com/xuri/excelize/v2"

	"biocat/internal/domain"
)

const (
	productExportSheet   = "Inventario"
	productTemplateSheet = "Productos"
)

var productColumns = []column{
	{header: "Nombre", aliases: []string{"nombre"}},
	{header: "Ubicación", aliases: []string{"ubicacion", "Ubicacion"}},
	{header: "Cantidad", aliases: []string{"cantidad"}},
	{header: "Costo", aliases: []string{"costo"}},
	{header: "Precio de Venta", aliases: []string{"precio_venta", "Precio_Venta"}},
}

func productHeaders() []string {
	headers := make([]string, len(productColumns))
	for i, col := range productColumns {
		headers[i] = col.header
	}
	return headers
}

// ExportProducts writes the whole collection to a single-sheet workbook,
// appending a read-only creation-date column.
func ExportProducts(products []domain.Product) (*excelize.File, error) {
	f, err := newWorkbook(productExportSheet, append(productHeaders(), "Fecha Creación"))
	if err != nil {
		return nil, err
	}
	for i, p := range products {
		row := []any{
			p.Name,
			p.Location,
			p.Quantity,
			p.Cost,
			p.SalePrice,
			p.CreatedAt.Format("02/01/2006"),
		}
		if err := setRow(f, productExportSheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ProductTemplate builds the empty workbook handed out for bulk loading.
func ProductTemplate() (*excelize.File, error) {
	return newWorkbook(productTemplateSheet, productHeaders())
}

// ImportProducts reads the first sheet of a workbook into product inputs.
// Rows missing either identifying field (name, location) are discarded;
// numeric cells are coerced with missing and non-numeric values reading as 0.
func ImportProducts(r io.Reader) ([]domain.ProductInput, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	indexes := resolveHeader(rows[0], productColumns)
	var inputs []domain.ProductInput
	for _, row := range rows[1:] {
		input := domain.ProductInput{
			Name:      cellAt(row, indexes[0]),
			Location:  cellAt(row, indexes[1]),
			Quantity:  intCell(row, indexes[2]),
			Cost:      floatCell(row, indexes[3]),
			SalePrice: floatCell(row, indexes[4]),
		}
		if input.Name == "" || input.Location == "" {
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
