package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserName  CtxKey = "UserName"
	KeyUserPhone CtxKey = "UserPhone"
	KeyUserRole  CtxKey = "Role"
	KeyRequestID CtxKey = "RequestID"
)
