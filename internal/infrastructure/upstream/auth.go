package upstream

import "context"

// LoginResult is the outcome of an upstream login.
type LoginResult struct {
	Token   string
	UserID  string
	Email   string
	Role    string
	SubRole string
}

// Login forwards credentials to the backend and returns the issued token
// together with the validated account's role information.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var envelope loginEnvelope
	if err := c.do(ctx, "POST", "/login", body, &envelope); err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:   envelope.Result.Token,
		UserID:  envelope.Result.ValidateUser.ID,
		Email:   envelope.Result.ValidateUser.Email,
		Role:    envelope.Result.ValidateUser.Role,
		SubRole: envelope.Result.ValidateUser.SubRole,
	}, nil
}
