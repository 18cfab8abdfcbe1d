package mocks

import (
	"net"

	"github.com/stretchr/testify/mock"

	"github.com/formcraft/session/internal/model"
)

// SecurityLayer is a testify mock of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

var _ model.SecurityLayer = (*SecurityLayer)(nil)

func (m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	args := m.Called(protocol, addr)

	var listener net.Listener
	if args.Get(0) != nil {
		listener = args.Get(0).(net.Listener)
	}

	return listener, args.Error(1)
}

// NewSecurityLayer returns a SecurityLayer mock registered with t so that
// expectations are asserted on cleanup.
func NewSecurityLayer(t interface {
	mock.TestingT
	Cleanup(func())
}) *SecurityLayer {
	m := &SecurityLayer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
