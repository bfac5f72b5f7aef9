package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) {
	userName, err := GetSimpleText(a.reader, "- Choose a username", a.out)
	if err != nil {
		a.log.Error(ctx, "reading input failed", "error", err)
		return
	}
	if userName == "" {
		fmt.Fprintln(a.out, "Username cannot be empty")
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "reading password failed", "error", err)
		return
	}

	if !a.auth.SignUp(ctx, userName, password) {
		fmt.Fprintln(a.out, "Registration failed: username already taken")
		return
	}

	a.userName = userName
	fmt.Fprintf(a.out, "Welcome, %s!\n", userName)
}

func (a *App) Login(ctx context.Context) {
	userName, err := GetSimpleText(a.reader, "- Enter username", a.out)
	if err != nil {
		a.log.Error(ctx, "reading input failed", "error", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "reading password failed", "error", err)
		return
	}

	if !a.auth.Login(ctx, userName, password) {
		fmt.Fprintln(a.out, "Login unsuccessful")
		return
	}

	a.userName = userName
	fmt.Fprintf(a.out, "Welcome back, %s!\n", userName)
}

func (a *App) Logout(ctx context.Context) {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
}
