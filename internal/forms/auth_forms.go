package forms

// LoginForm is submitted by the sign-in page.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is submitted by the sign-up page.
type RegisterForm struct {
	Username string `form:"username" validate:"required,notblank,min=3,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}
