package models

// Request shapes accepted by the create and update operations. Pointer fields
// distinguish "absent" from the zero value so defaults and required checks
// can be applied by the validators.

type GroupInput struct {
	Name        string  `json:"name" validate:"min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsPublic    *bool   `json:"isPublic"`
	OwnerID     *int64  `json:"ownerId" validate:"required,gt=0"`
}

type UserGroupInput struct {
	UserID  *int64 `json:"userId" validate:"required,gt=0"`
	GroupID *int64 `json:"groupId" validate:"required,gt=0"`
	IsMod   *bool  `json:"isMod"`
}

type UserInput struct {
	Name      string `json:"name" validate:"min=3,max=50,username"`
	Pseudo    string `json:"pseudo" validate:"min=3,max=25,pseudo"`
	Email     string `json:"email" validate:"required,email,emailformat"`
	Password  string `json:"password"`
	Country   string `json:"country" validate:"country"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	NumTel    string `json:"numTel" validate:"required"`
}

type ProfileInput struct {
	UserID       *int64 `json:"userId" validate:"required,gt=0"`
	Description  string `json:"description" validate:"required"`
	Img          string `json:"img"`
	ConnectionID string `json:"connectionId"`
	IsPrivate    *bool  `json:"isPrivate" validate:"required"`
	Status       string `json:"status" validate:"required"`
	Banner       string `json:"banner"`
}
