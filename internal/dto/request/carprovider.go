package request

type CreateCarProviderRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Address string `json:"address" validate:"required"`
	Tel     string `json:"tel" validate:"required,min=9,max=15"`
	Picture string `json:"picture" validate:"omitempty,url"`
	// RenterID is only honored for admin callers; renter callers always own
	// the providers they create.
	RenterID *string `json:"renter_id,omitempty" validate:"omitempty,uuid4"`
}

type UpdateCarProviderRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Address *string `json:"address,omitempty"`
	Tel     *string `json:"tel,omitempty" validate:"omitempty,min=9,max=15"`
	Picture *string `json:"picture,omitempty" validate:"omitempty,url"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=available rented"`
}
