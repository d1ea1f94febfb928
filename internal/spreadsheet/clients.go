package spreadsheet

import (
	"io"

	"github.com/xuri/excelize/v2"

	"biocat/internal/domain"
)

const clientSheet = "Clientes"

var clientColumns = []column{
	{header: "Nombre", aliases: []string{"nombre"}},
	{header: "Contacto", aliases: []string{"contacto"}},
	{header: "Lugar de Envío", aliases: []string{"Lugar de Envio", "lugar_envio"}},
}

func clientHeaders() []string {
	headers := make([]string, len(clientColumns))
	for i, col := range clientColumns {
		headers[i] = col.header
	}
	return headers
}

// ExportClients writes the client book to a single-sheet workbook.
func ExportClients(clients []domain.Client) (*excelize.File, error) {
	f, err := newWorkbook(clientSheet, append(clientHeaders(), "Fecha Creación"))
	if err != nil {
		return nil, err
	}
	for i, c := range clients {
		row := []any{
			c.Name,
			c.Contact,
			c.ShippingLocation,
			c.CreatedAt.Format("02/01/2006"),
		}
		if err := setRow(f, clientSheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ClientTemplate builds the empty workbook handed out for bulk loading.
func ClientTemplate() (*excelize.File, error) {
	return newWorkbook(clientSheet, clientHeaders())
}

// ImportClients reads the first sheet of a workbook into client inputs. Rows
// missing either identifying field (name, contact) are discarded.
func ImportClients(r io.Reader) ([]domain.ClientInput, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	indexes := resolveHeader(rows[0], clientColumns)
	var inputs []domain.ClientInput
	for _, row := range rows[1:] {
		input := domain.ClientInput{
			Name:             cellAt(row, indexes[0]),
			Contact:          cellAt(row, indexes[1]),
			ShippingLocation: cellAt(row, indexes[2]),
		}
		if input.Name == "" || input.Contact == "" {
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
