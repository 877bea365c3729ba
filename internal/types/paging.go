package types

type Paging struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
	Size        int `json:"size"`
}

// ContactPage is the search result envelope: the page of contacts plus the
// paging metadata, both at the top level of the response body.
type ContactPage struct {
	Data   []ContactResponse `json:"data"`
	Paging Paging            `json:"paging"`
}
