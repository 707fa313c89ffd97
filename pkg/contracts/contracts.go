// Package contracts holds the ABIs of the governance and membership contracts
// and the bindings generated from them.
package contracts

//go:generate abigen --abi abi/GovDao.json --pkg govdao --type GovDao --out govdao/govdao.go
//go:generate abigen --abi abi/GalleryKeys.json --pkg gallerykeys --type GalleryKeys --out gallerykeys/gallerykeys.go
