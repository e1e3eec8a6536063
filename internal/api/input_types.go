package api

type registerInput struct {
	Email           string `json:"email" form:"email"`
	Username        string `json:"username" form:"username"`
	Password        string `json:"password" form:"password"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm"`
}

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type recordInput struct {
	SatisfactionLevel *int   `json:"satisfaction_level" form:"satisfaction_level"`
	Memo              string `json:"memo" form:"memo"`
	Date              string `json:"date" form:"date"`
}
