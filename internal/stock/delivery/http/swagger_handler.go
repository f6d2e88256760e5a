package http

// AddStock godoc
// @Summary Add or merge stock
// @Description Add quantity to an existing (name, price) row or insert a new one
// @Tags Stock
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,quantity=int,price=number} true "Stock data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/stock [post]
func (h *StockHandler) AddStockDoc() {}

// ListStock godoc
// @Summary List stock items
// @Description List inventory rows with pagination
// @Tags Stock
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/stock [get]
func (h *StockHandler) ListStockDoc() {}

// DeleteStock godoc
// @Summary Delete a stock item
// @Description Remove one inventory row by id
// @Tags Stock
// @Security BearerAuth
// @Produce json
// @Param id path int true "Stock ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stock/{id} [delete]
func (h *StockHandler) DeleteStockDoc() {}
