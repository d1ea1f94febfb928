package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"biocat/internal/currency"
	"biocat/internal/domain"
	"biocat/internal/query"
	"biocat/internal/spreadsheet"
)

type ProductResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	Quantity         int     `json:"quantity"`
	Cost             float64 `json:"cost"`
	SalePrice        float64 `json:"sale_price"`
	CostDisplay      string  `json:"cost_display"`
	SalePriceDisplay string  `json:"sale_price_display"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type ProductPageResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	From       int               `json:"from"`
	To         int               `json:"to"`
	Locations  []string          `json:"locations"`
}

type productRequest struct {
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Quantity  int     `json:"quantity"`
	Cost      float64 `json:"cost"`
	SalePrice float64 `json:"sale_price"`
}

func (r productRequest) toInput() domain.ProductInput {
	return domain.ProductInput{
		Name:      r.Name,
		Location:  r.Location,
		Quantity:  r.Quantity,
		Cost:      r.Cost,
		SalePrice: r.SalePrice,
	}
}

func (h *Handler) listProducts(c *gin.Context) {
	filter := query.ProductFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
	}

	var err error
	if filter.MinQuantity, err = optionalIntQuery(c, "min_quantity"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_quantity"})
		return
	}
	if filter.MaxQuantity, err = optionalIntQuery(c, "max_quantity"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_quantity"})
		return
	}

	page, size := pageParams(c)
	all := h.products.List(c.Request.Context())
	filtered := query.FilterProducts(all, filter)
	paged := query.Paginate(filtered, page, size)

	items := make([]ProductResponse, len(paged.Items))
	for i := range paged.Items {
		items[i] = productToResponse(paged.Items[i])
	}

	c.JSON(http.StatusOK, ProductPageResponse{
		Items:      items,
		Total:      paged.Total,
		TotalPages: paged.TotalPages,
		Page:       paged.Number,
		PageSize:   paged.Size,
		From:       paged.From,
		To:         paged.To,
		Locations:  query.ProductLocations(all),
	})
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, productToResponse(*product))
}

func (h *Handler) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productToResponse(*product))
}

func (h *Handler) updateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, productToResponse(*product))
}

func (h *Handler) deleteProduct(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *Handler) clearProducts(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.products.Clear(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

func (h *Handler) exportProducts(c *gin.Context) {
	products := h.products.List(c.Request.Context())
	if len(products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No hay productos para exportar"})
		return
	}

	f, err := spreadsheet.ExportProducts(products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("2006-01-02"))
	writeWorkbook(c, f, filename)
}

func (h *Handler) productTemplate(c *gin.Context) {
	f, err := spreadsheet.ProductTemplate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	writeWorkbook(c, f, "formato_productos.xlsx")
}

func (h *Handler) importProducts(c *gin.Context) {
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

	inputs, err := spreadsheet.ImportProducts(src)
	if err != nil {
		writeError(c, err)
		return
	}

	imported, err := h.products.Import(c.Request.Context(), inputs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

func productToResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Location:         p.Location,
		Quantity:         p.Quantity,
		Cost:             p.Cost,
		SalePrice:        p.SalePrice,
		CostDisplay:      currency.FormatBoliviano(p.Cost),
		SalePriceDisplay: currency.FormatBoliviano(p.SalePrice),
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        p.UpdatedAt.Format(time.RFC3339),
	}
}

func optionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(query.DefaultPageSize)))
	return page, size
}
