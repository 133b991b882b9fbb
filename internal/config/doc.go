// Package config defines the format-agnostic scene model, along with the
// interfaces (Loader, Converter) for loading scene descriptions from
// various sources and decoding their arguments into builders.
//
// The config.Model is what the scene instantiation step consumes. Concrete
// implementations of the interfaces, such as for HCL, are provided in
// separate packages.
package config
