package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/benshabbat/receipt-scanner/internal/engine"
	"github.com/benshabbat/receipt-scanner/internal/entity"
)

// ParseRequest is the JSON body for /api/parse, /api/lines and /api/export.
// MaxPrice optionally overrides the per-item price ceiling.
type ParseRequest struct {
	Text     string  `json:"text"`
	MaxPrice float64 `json:"maxPrice,omitempty"`
}

// ParseResponse wraps the assembled receipt.
type ParseResponse struct {
	Receipt *entity.Receipt `json:"receipt"`
}

// LinesResponse carries the preprocessed line list for the raw-text debug view.
type LinesResponse struct {
	Lines []string `json:"lines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleParse(c *fiber.Ctx) error {
	req, ok, err := decodeParseRequest(c)
	if !ok {
		return err
	}
	rec, err := s.engine.ParseWithBounds(req.Text, req.MaxPrice)
	if err != nil {
		return parseError(c, err)
	}
	return c.JSON(ParseResponse{Receipt: rec})
}

func (s *Server) handleLines(c *fiber.Ctx) error {
	req, ok, err := decodeParseRequest(c)
	if !ok {
		return err
	}
	return c.JSON(LinesResponse{Lines: s.engine.Lines(req.Text)})
}

func (s *Server) handleExport(c *fiber.Ctx) error {
	req, ok, err := decodeParseRequest(c)
	if !ok {
		return err
	}
	rec, err := s.engine.ParseWithBounds(req.Text, req.MaxPrice)
	if err != nil {
		return parseError(c, err)
	}
	data, err := s.export.ReceiptXLSX(rec)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "export failed"})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="receipt.xlsx"`)
	return c.Send(data)
}

func decodeParseRequest(c *fiber.Ctx) (ParseRequest, bool, error) {
	var req ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return req, false, c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}
	if req.Text == "" {
		return req, false, c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "text is required"})
	}
	return req, true, nil
}

func parseError(c *fiber.Ctx, err error) error {
	if errors.Is(err, engine.ErrTextTooShort) {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "recognition too sparse"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "parse failed"})
}
