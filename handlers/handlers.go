// Package handlers contains the HTTP handlers for the LBaaS control plane.
//
// Only the authentication and health endpoints are implemented; the
// business-domain handlers below are registered scaffold stubs awaiting
// their controllers.
package handlers

import (
	"net/http"

	"github.com/opslab/lbaas-control-plane/utils"
)

// notImplemented builds a stub handler for a scaffold endpoint
func notImplemented(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteNotImplemented(w, message)
	}
}

// VIP management stubs

func ListVIPsHandler() http.HandlerFunc {
	return notImplemented("List VIPs endpoint not yet implemented")
}

func CreateVIPHandler() http.HandlerFunc {
	return notImplemented("Create VIP endpoint not yet implemented")
}

func GetVIPHandler() http.HandlerFunc {
	return notImplemented("Get VIP endpoint not yet implemented")
}

func UpdateVIPHandler() http.HandlerFunc {
	return notImplemented("Update VIP endpoint not yet implemented")
}

func DeleteVIPHandler() http.HandlerFunc {
	return notImplemented("Delete VIP endpoint not yet implemented")
}

// Entitlement stubs

func ListEntitlementsHandler() http.HandlerFunc {
	return notImplemented("List entitlements endpoint not yet implemented")
}

func CreateEntitlementHandler() http.HandlerFunc {
	return notImplemented("Create entitlement endpoint not yet implemented")
}

// Transformer stubs

func ListTransformersHandler() http.HandlerFunc {
	return notImplemented("List transformers endpoint not yet implemented")
}

func TransformHandler() http.HandlerFunc {
	return notImplemented("Transform endpoint not yet implemented")
}

// Promotion stubs

func PromoteHandler() http.HandlerFunc {
	return notImplemented("Promotion endpoint not yet implemented")
}

// Bluecat DDI stubs

func BluecatLookupHandler() http.HandlerFunc {
	return notImplemented("Bluecat DDI lookup endpoint not yet implemented")
}

func BluecatRegisterHandler() http.HandlerFunc {
	return notImplemented("Bluecat DDI register endpoint not yet implemented")
}

// Ansible automation stubs

func AnsibleRunHandler() http.HandlerFunc {
	return notImplemented("Ansible run endpoint not yet implemented")
}

func AnsibleStatusHandler() http.HandlerFunc {
	return notImplemented("Ansible status endpoint not yet implemented")
}

// Mock service stubs

func MockHealthHandler() http.HandlerFunc {
	return notImplemented("Mock health endpoint not yet implemented")
}
