// Copyright (c) 2024 Soprano Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soprano.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package aria

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// This file provides registries for Processor and VirtualMachine
// implementations.
//
// The registries are intended to be used by client applications that would
// like to use transaction processing services. For an implementation to be
// available it needs to be registered. Typically, this registration is part
// of the init code of the package providing an implementation. Thus, by
// including the implementation package, implementations become available in
// these central registries.

// ProcessorFactory is the type of a function creating a Processor bound to
// the given collaborator services.
type ProcessorFactory func(Services) Processor

// NewProcessor performs a lookup for the given name (case-insensitive) in
// the registry and creates a new Processor using the given services. An
// error is returned if no factory was registered under the name.
func NewProcessor(name string, services Services) (Processor, error) {
	factory := GetProcessorFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("processor not found: %s", name)
	}
	return factory(services), nil
}

// GetProcessorFactory performs a lookup for the given name
// (case-insensitive) in the registry. The result is nil if no factory was
// registered under the given name.
func GetProcessorFactory(name string) ProcessorFactory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return processorRegistry[strings.ToLower(name)]
}

// GetAllRegisteredProcessorFactories obtains all registered implementations.
func GetAllRegisteredProcessorFactories() map[string]ProcessorFactory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return maps.Clone(processorRegistry)
}

// RegisterProcessorFactory registers a new Processor implementation to be
// exported for general use in the binary. The name is not case-sensitive,
// and a panic is triggered if a factory was bound to the same name before,
// or the factory is nil. This function is mainly intended to be used by
// package initialization code.
func RegisterProcessorFactory(name string, factory ProcessorFactory) {
	key := strings.ToLower(name)
	if factory == nil {
		panic(fmt.Sprintf("invalid initialization: cannot register nil-factory using `%s`", key))
	}
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, found := processorRegistry[key]; found {
		panic(fmt.Sprintf("invalid initialization: multiple factories registered for `%s`", key))
	}
	processorRegistry[key] = factory
}

// VirtualMachineFactory is the type of a function that creates a new
// VirtualMachine using a machine specific configuration.
type VirtualMachineFactory func(config any) (VirtualMachine, error)

// NewVirtualMachine performs a lookup for the given name (case-insensitive)
// in the registry and creates a new VirtualMachine using the given optional
// configuration. If no configuration is provided, the factory is called with
// a nil configuration. An error is returned if no factory was registered
// under the given name.
func NewVirtualMachine(name string, config ...any) (VirtualMachine, error) {
	if len(config) > 1 {
		return nil, fmt.Errorf("invalid configuration: too many arguments")
	}
	factory := GetVirtualMachineFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("virtual machine not found: %s", name)
	}
	c := any(nil)
	if len(config) > 0 {
		c = config[0]
	}
	return factory(c)
}

// GetVirtualMachineFactory performs a lookup for the given name
// (case-insensitive) in the registry. The result is nil if no factory was
// registered under the given name.
func GetVirtualMachineFactory(name string) VirtualMachineFactory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return machineRegistry[strings.ToLower(name)]
}

// GetAllRegisteredVirtualMachineFactories obtains all registered
// implementations.
func GetAllRegisteredVirtualMachineFactories() map[string]VirtualMachineFactory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return maps.Clone(machineRegistry)
}

// RegisterVirtualMachineFactory registers a new VirtualMachine
// implementation to be exported for general use in the binary. The name is
// not case-sensitive, and a panic is triggered if a factory was bound to the
// same name before, or the factory is nil.
func RegisterVirtualMachineFactory(name string, factory VirtualMachineFactory) {
	key := strings.ToLower(name)
	if factory == nil {
		panic(fmt.Sprintf("invalid initialization: cannot register nil-factory using `%s`", key))
	}
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, found := machineRegistry[key]; found {
		panic(fmt.Sprintf("invalid initialization: multiple factories registered for `%s`", key))
	}
	machineRegistry[key] = factory
}

// processorRegistry is a global registry for Processor factories of
// different implementations.
var processorRegistry = map[string]ProcessorFactory{}

// machineRegistry is a global registry for VirtualMachine factories of
// different implementations and configurations.
var machineRegistry = map[string]VirtualMachineFactory{}

// registryLock to protect access to the registries.
var registryLock sync.Mutex
