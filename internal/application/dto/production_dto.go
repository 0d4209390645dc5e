package dto

// CreateProductionEntryRequest entrada para registrar producción. El worker
// y su nombre se toman de la sesión o del usuario referenciado; el caller de
// formulario valida, el use case no re-valida.
type CreateProductionEntryRequest struct {
	ProductName string `json:"productName" validate:"required,min=1,max=200"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	Shift       string `json:"shift" validate:"required,oneof=morning afternoon night"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// WorkerProductivityDTO total producido por trabajador (orden descendente).
type WorkerProductivityDTO struct {
	WorkerID   string `json:"workerId"`
	WorkerName string `json:"workerName"`
	Quantity   int    `json:"quantity"`
}
