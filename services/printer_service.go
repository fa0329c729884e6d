package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"pos-service/apperrors"
	"pos-service/models"
)

// IPrinterService defines the interface for the receipt printer gateway.
type IPrinterService interface {
	PrintTicket(ticket *models.KitchenTicket) error
}

// PrinterService posts small XML documents to an ePOS-style print endpoint.
// The timeout bounds how long a slow printer can hold a request.
type PrinterService struct {
	endpoint string
	client   *http.Client
}

// NewPrinterService creates a new PrinterService instance.
func NewPrinterService(endpoint string, timeout time.Duration) IPrinterService {
	return &PrinterService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type printLine struct {
	Name     string `xml:"name,attr"`
	Quantity int    `xml:"qty,attr"`
	Phase    string `xml:"phase,attr"`
	Notes    string `xml:"notes,attr,omitempty"`
}

type printDoc struct {
	XMLName     xml.Name    `xml:"ticket"`
	Table       int         `xml:"table,attr"`
	Destination string      `xml:"destination,attr"`
	Lines       []printLine `xml:"line"`
}

// PrintTicket renders a ticket as XML and posts it to the printer.
func (s *PrinterService) PrintTicket(ticket *models.KitchenTicket) error {
	doc := printDoc{
		Table:       ticket.TableNumber,
		Destination: ticket.Destination,
	}
	for _, line := range ticket.Lines {
		doc.Lines = append(doc.Lines, printLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Phase:    line.Phase,
			Notes:    line.Notes,
		})
	}

	payload, err := xml.Marshal(doc)
	if err != nil {
		return apperrors.Peripheral("encode ticket", err)
	}

	resp, err := s.client.Post(s.endpoint, "text/xml", bytes.NewReader(payload))
	if err != nil {
		return apperrors.Peripheral("printer unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.Peripheral("printer rejected ticket",
			fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}
	return nil
}
