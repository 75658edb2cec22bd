// Package repomock provides testify mocks of the repository interfaces.
package repomock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
)

func ptr[T any](args mock.Arguments) *T {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*T)
}

func slice[T any](args mock.Arguments) []T {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]T)
}

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	return ptr[models.User](args), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	return ptr[models.User](args), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return slice[models.User](args), args.Error(1)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, p repository.ProfileUpdate) (*models.User, error) {
	args := m.Called(ctx, id, p)
	return ptr[models.User](args), args.Error(1)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) (*models.User, error) {
	args := m.Called(ctx, id, hash)
	return ptr[models.User](args), args.Error(1)
}

func (m *UserRepository) TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	return ptr[models.User](args), args.Error(1)
}

func (m *UserRepository) LoginCountsByMonth(ctx context.Context, from, to time.Time) (map[string]int, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// EmployeeRepository is a mock implementation of repository.EmployeeRepository.
type EmployeeRepository struct {
	mock.Mock
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)

func (m *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *EmployeeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	args := m.Called(ctx, id)
	return ptr[models.Employee](args), args.Error(1)
}

func (m *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	args := m.Called(ctx, email)
	return ptr[models.Employee](args), args.Error(1)
}

func (m *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	args := m.Called(ctx)
	return slice[models.Employee](args), args.Error(1)
}

func (m *EmployeeRepository) Update(ctx context.Context, id primitive.ObjectID, u repository.EmployeeUpdate) (*models.Employee, error) {
	args := m.Called(ctx, id, u)
	return ptr[models.Employee](args), args.Error(1)
}

func (m *EmployeeRepository) TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *EmployeeRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	args := m.Called(ctx, id)
	return ptr[models.Employee](args), args.Error(1)
}

// FactoryRepository is a mock implementation of repository.FactoryRepository.
type FactoryRepository struct {
	mock.Mock
}

var _ repository.FactoryRepository = (*FactoryRepository)(nil)

func (m *FactoryRepository) Create(ctx context.Context, factory *models.Factory) error {
	return m.Called(ctx, factory).Error(0)
}

func (m *FactoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Factory, error) {
	args := m.Called(ctx, id)
	return ptr[models.Factory](args), args.Error(1)
}

func (m *FactoryRepository) FindByFID(ctx context.Context, fID string) (*models.Factory, error) {
	args := m.Called(ctx, fID)
	return ptr[models.Factory](args), args.Error(1)
}

func (m *FactoryRepository) List(ctx context.Context) ([]models.Factory, error) {
	args := m.Called(ctx)
	return slice[models.Factory](args), args.Error(1)
}

func (m *FactoryRepository) Update(ctx context.Context, id primitive.ObjectID, factory *models.Factory) (*models.Factory, error) {
	args := m.Called(ctx, id, factory)
	return ptr[models.Factory](args), args.Error(1)
}

func (m *FactoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Factory, error) {
	args := m.Called(ctx, id)
	return ptr[models.Factory](args), args.Error(1)
}

// MachineRepository is a mock implementation of repository.MachineRepository.
type MachineRepository struct {
	mock.Mock
}

var _ repository.MachineRepository = (*MachineRepository)(nil)

func (m *MachineRepository) Create(ctx context.Context, machine *models.Machine) error {
	return m.Called(ctx, machine).Error(0)
}

func (m *MachineRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Machine, error) {
	args := m.Called(ctx, id)
	return ptr[models.Machine](args), args.Error(1)
}

func (m *MachineRepository) FindByMID(ctx context.Context, mID string) (*models.Machine, error) {
	args := m.Called(ctx, mID)
	return ptr[models.Machine](args), args.Error(1)
}

func (m *MachineRepository) List(ctx context.Context, factory string) ([]models.Machine, error) {
	args := m.Called(ctx, factory)
	return slice[models.Machine](args), args.Error(1)
}

func (m *MachineRepository) Update(ctx context.Context, id primitive.ObjectID, machine *models.Machine) (*models.Machine, error) {
	args := m.Called(ctx, id, machine)
	return ptr[models.Machine](args), args.Error(1)
}

func (m *MachineRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Machine, error) {
	args := m.Called(ctx, id)
	return ptr[models.Machine](args), args.Error(1)
}

// CartRepository is a mock implementation of repository.CartRepository.
type CartRepository struct {
	mock.Mock
}

var _ repository.CartRepository = (*CartRepository)(nil)

func (m *CartRepository) Add(ctx context.Context, item *models.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *CartRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.CartItem, error) {
	args := m.Called(ctx, customerID)
	return slice[models.CartItem](args), args.Error(1)
}

func (m *CartRepository) FindItem(ctx context.Context, customerID, productID string) (*models.CartItem, error) {
	args := m.Called(ctx, customerID, productID)
	return ptr[models.CartItem](args), args.Error(1)
}

func (m *CartRepository) UpdateQuantity(ctx context.Context, customerID, productID string, quantity int) (*models.CartItem, error) {
	args := m.Called(ctx, customerID, productID, quantity)
	return ptr[models.CartItem](args), args.Error(1)
}

func (m *CartRepository) DeleteItem(ctx context.Context, customerID, productID string) (*models.CartItem, error) {
	args := m.Called(ctx, customerID, productID)
	return ptr[models.CartItem](args), args.Error(1)
}

// ProductRepository is a mock implementation of repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (m *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	return ptr[models.Product](args), args.Error(1)
}

func (m *ProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, ids)
	return slice[models.Product](args), args.Error(1)
}

func (m *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return slice[models.Product](args), args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, product *models.Product) (*models.Product, error) {
	args := m.Called(ctx, id, product)
	return ptr[models.Product](args), args.Error(1)
}

func (m *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	return ptr[models.Product](args), args.Error(1)
}

// IncomeRepository is a mock implementation of repository.IncomeRepository.
type IncomeRepository struct {
	mock.Mock
}

var _ repository.IncomeRepository = (*IncomeRepository)(nil)

func (m *IncomeRepository) Create(ctx context.Context, record *models.IncomeRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *IncomeRepository) ListSince(ctx context.Context, from time.Time) ([]models.IncomeRecord, error) {
	args := m.Called(ctx, from)
	return slice[models.IncomeRecord](args), args.Error(1)
}

// DeliveryRepository is a mock implementation of repository.DeliveryRepository.
type DeliveryRepository struct {
	mock.Mock
}

var _ repository.DeliveryRepository = (*DeliveryRepository)(nil)

func (m *DeliveryRepository) Create(ctx context.Context, delivery *models.Delivery) error {
	return m.Called(ctx, delivery).Error(0)
}

// SupplierRepository is a mock implementation of repository.SupplierRepository.
type SupplierRepository struct {
	mock.Mock
}

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

func (m *SupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *SupplierRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Supplier, error) {
	args := m.Called(ctx, id)
	return ptr[models.Supplier](args), args.Error(1)
}

func (m *SupplierRepository) List(ctx context.Context) ([]models.Supplier, error) {
	args := m.Called(ctx)
	return slice[models.Supplier](args), args.Error(1)
}

func (m *SupplierRepository) Update(ctx context.Context, id primitive.ObjectID, supplier *models.Supplier) (*models.Supplier, error) {
	args := m.Called(ctx, id, supplier)
	return ptr[models.Supplier](args), args.Error(1)
}

func (m *SupplierRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Supplier, error) {
	args := m.Called(ctx, id)
	return ptr[models.Supplier](args), args.Error(1)
}
