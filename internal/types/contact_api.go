package types

type CreateContactRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,min=10,max=20"`
}

type UpdateContactRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,min=10,max=20"`
}

// SearchContactRequest is bound from query parameters. Filters are substring
// matches; name runs against first_name OR last_name, all provided filters
// combine with AND.
type SearchContactRequest struct {
	Name  *string `form:"name" binding:"omitempty,min=1,max=100"`
	Phone *string `form:"phone" binding:"omitempty,min=10,max=20"`
	Email *string `form:"email" binding:"omitempty,min=1,max=100"`
	Page  int     `form:"page,default=1" binding:"gte=1"`
	Size  int     `form:"size,default=10" binding:"gte=1"`
}

// ContactResponse keeps optional fields as pointers so absent values
// serialize as explicit JSON nulls.
type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func ToContactResponse(contact *Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
