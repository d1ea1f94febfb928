package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"biocat/internal/domain"
	"biocat/internal/query"
	"biocat/internal/spreadsheet"
)

type ClientResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Contact          string `json:"contact"`
	ShippingLocation string `json:"shipping_location"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type ClientPageResponse struct {
	Items      []ClientResponse `json:"items"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	From       int              `json:"from"`
	To         int              `json:"to"`
	Locations  []string         `json:"locations"`
}

type clientRequest struct {
	Name             string `json:"name"`
	Contact          string `json:"contact"`
	ShippingLocation string `json:"shipping_location"`
}

func (r clientRequest) toInput() domain.ClientInput {
	return domain.ClientInput{
		Name:             r.Name,
		Contact:          r.Contact,
		ShippingLocation: r.ShippingLocation,
	}
}

func (h *Handler) listClients(c *gin.Context) {
	filter := query.ClientFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
	}

	page, size := pageParams(c)
	all := h.clients.List(c.Request.Context())
	filtered := query.FilterClients(all, filter)
	paged := query.Paginate(filtered, page, size)

	items := make([]ClientResponse, len(paged.Items))
	for i := range paged.Items {
		items[i] = clientToResponse(paged.Items[i])
	}

	c.JSON(http.StatusOK, ClientPageResponse{
		Items:      items,
		Total:      paged.Total,
		TotalPages: paged.TotalPages,
		Page:       paged.Number,
		PageSize:   paged.Size,
		From:       paged.From,
		To:         paged.To,
		Locations:  query.ClientLocations(all),
	})
}

func (h *Handler) getClient(c *gin.Context) {
	client, err := h.clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientToResponse(*client))
}

func (h *Handler) createClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clients.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, clientToResponse(*client))
}

func (h *Handler) updateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clients.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientToResponse(*client))
}

func (h *Handler) deleteClient(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.clients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *Handler) clearClients(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.clients.Clear(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

func (h *Handler) exportClients(c *gin.Context) {
	clients := h.clients.List(c.Request.Context())
	if len(clients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No hay clientes para exportar"})
		return
	}

	f, err := spreadsheet.ExportClients(clients)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("clientes_%s.xlsx", time.Now().Format("2006-01-02"))
	writeWorkbook(c, f, filename)
}

func (h *Handler) clientTemplate(c *gin.Context) {
	f, err := spreadsheet.ClientTemplate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	writeWorkbook(c, f, "formato_clientes.xlsx")
}

func (h *Handler) importClients(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	defer src.Close()

	inputs, err := spreadsheet.ImportClients(src)
	if err != nil {
		writeError(c, err)
		return
	}

	imported, err := h.clients.Import(c.Request.Context(), inputs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

func clientToResponse(cl domain.Client) ClientResponse {
	return ClientResponse{
		ID:               cl.ID,
		Name:             cl.Name,
		Contact:          cl.Contact,
		ShippingLocation: cl.ShippingLocation,
		CreatedAt:        cl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        cl.UpdatedAt.Format(time.RFC3339),
	}
}
