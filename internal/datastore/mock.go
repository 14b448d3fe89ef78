package datastore

import (
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetDatasetStore implements the StoreManager interface.
func (m *MockStoreManager) GetDatasetStore() contract.DatasetStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.DatasetStore)
	return store
}

// MockDatasetStore is a mock implementation of DatasetStore for testing.
type MockDatasetStore struct {
	mock.Mock
}

var _ contract.DatasetStore = &MockDatasetStore{} // Compile-time check

// Save implements the DatasetStore interface.
func (m *MockDatasetStore) Save(ds *schema.Dataset) error {
	args := m.Called(ds)
	return args.Error(0)
}

// Load implements the DatasetStore interface.
func (m *MockDatasetStore) Load(name string) (*schema.Dataset, error) {
	args := m.Called(name)
	ds, _ := args.Get(0).(*schema.Dataset)
	return ds, args.Error(1)
}

// List implements the DatasetStore interface.
func (m *MockDatasetStore) List() ([]schema.DatasetInfo, error) {
	args := m.Called()
	infos, _ := args.Get(0).([]schema.DatasetInfo)
	return infos, args.Error(1)
}

// Delete implements the DatasetStore interface.
func (m *MockDatasetStore) Delete(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// GetStatus implements the DatasetStore interface.
func (m *MockDatasetStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the DatasetStore interface.
func (m *MockDatasetStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
