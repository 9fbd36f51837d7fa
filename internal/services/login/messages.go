package login

import "errors"

// Status strings shown to the user after a login attempt.
const (
	MessageSuccess          = "로그인 성공"
	MessageEmptyCredentials = "아이디와 비밀번호를 모두 입력해주세요"
	MessageUserNotFound     = "사용자를 찾을 수 없습니다"
	MessageInvalidPassword  = "유효하지 않은 비밀번호 입니다"
)

// StatusMessage maps the outcome of Login to the status string for the login screen.
func StatusMessage(err error) string {
	switch {
	case err == nil:
		return MessageSuccess
	case errors.Is(err, ErrEmptyCredentials):
		return MessageEmptyCredentials
	case errors.Is(err, ErrUserNotFound):
		return MessageUserNotFound
	case errors.Is(err, ErrInvalidCredential):
		return MessageInvalidPassword
	default:
		return "Login error: " + err.Error()
	}
}
