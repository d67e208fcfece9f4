// Package document loads ".veneer.json" containers: JSON files holding
// named style definitions and named templates. Loading decodes the
// container, anchors every relative reference to the container's own path
// and publishes each definition under a labeled path so other documents can
// refer to it.
package document
