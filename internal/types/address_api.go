package types

type CreateAddressRequest struct {
	Street     *string `json:"street" binding:"omitempty,min=1,max=255"`
	City       *string `json:"city" binding:"omitempty,min=1,max=100"`
	Province   *string `json:"province" binding:"omitempty,min=1,max=100"`
	Country    *string `json:"country" binding:"omitempty,min=1,max=100"`
	PostalCode *string `json:"postal_code" binding:"omitempty,min=1,max=10"`
}

type UpdateAddressRequest struct {
	Street     *string `json:"street" binding:"omitempty,min=1,max=255"`
	City       *string `json:"city" binding:"omitempty,min=1,max=100"`
	Province   *string `json:"province" binding:"omitempty,min=1,max=100"`
	Country    *string `json:"country" binding:"omitempty,min=1,max=100"`
	PostalCode *string `json:"postal_code" binding:"omitempty,min=1,max=10"`
}

type AddressResponse struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
}

func ToAddressResponse(address *Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}
