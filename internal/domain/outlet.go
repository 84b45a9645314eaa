package domain

type Outlet struct {
	ID       int64
	Name     string
	IsActive bool
}
