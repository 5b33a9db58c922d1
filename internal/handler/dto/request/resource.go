package request

type CreateResourceRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	Category   string `json:"category" binding:"required,max=100"`
	TotalStock *int   `json:"total_stock" binding:"required,min=0"`
}

type RestockRequest struct {
	Delta  *int           `json:"delta" binding:"required,min=0"`
	Window OptionalWindow `json:"window"`
}
