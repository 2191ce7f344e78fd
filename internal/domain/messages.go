package domain

// Claves de mensajes de error localizables.
const (
	MsgRegionNotFound   = "msg.region.notFound"
	MsgRegionCodeExists = "msg.region.codeExist"

	MsgProvinceNotFound       = "msg.province.notFound"
	MsgProvinceCodeExists     = "msg.province.codeExist"
	MsgProvinceRegionNotFound = "msg.province.regionNotFound"

	MsgSupermarketNotFound   = "msg.supermarket.notFound"
	MsgSupermarketNameExists = "msg.supermarket.nameExist"

	MsgLocationNotFound            = "msg.location.notFound"
	MsgLocationAddressExists       = "msg.location.addressExist"
	MsgLocationSupermarketNotFound = "msg.location.supermarketNotFound"
	MsgLocationProvinceNotFound    = "msg.location.provinceNotFound"

	MsgCategoryNotFound       = "msg.category.notFound"
	MsgCategoryNameExists     = "msg.category.nameExist"
	MsgCategoryParentNotFound = "msg.category.parentNotFound"
	MsgCategoryParentCycle    = "msg.category.parentCycle"
	MsgCategoryImageSave      = "msg.category.imageSave"
	MsgCategoryImageDelete    = "msg.category.imageDelete"
	MsgCategoryImageType      = "msg.category.imageType"

	MsgProductNotFound   = "msg.product.notFound"
	MsgProductNameExists = "msg.product.nameExist"

	MsgTicketNotFound             = "msg.ticket.notFound"
	MsgTicketLocationNotFound     = "msg.ticket.locationNotFound"
	MsgTicketProductsNotFound     = "msg.ticket.productsNotFound"
	MsgTicketProductNotFound      = "msg.ticket.productNotFound"
	MsgTicketProductAlreadyLinked = "msg.ticket.productAlreadyLinked"
	MsgTicketProductNotLinked     = "msg.ticket.productNotLinked"

	MsgInUse        = "msg.inUse"
	MsgNotFound     = "msg.notFound"
	MsgValidation   = "msg.validation"
	MsgInvalidBody  = "msg.invalidBody"
	MsgInvalidID    = "msg.invalidId"
	MsgInternal     = "msg.internal"
	MsgMissingToken = "msg.auth.missingToken"
	MsgInvalidToken = "msg.auth.invalidToken"
	MsgMissingRole  = "msg.auth.missingRole"
	MsgForbidden    = "msg.auth.forbidden"
)

// MessagesES catálogo en español (idioma por defecto).
var MessagesES = map[string]string{
	MsgRegionNotFound:   "La región no existe.",
	MsgRegionCodeExists: "El código de la región ya existe.",

	MsgProvinceNotFound:       "La provincia no existe.",
	MsgProvinceCodeExists:     "El código de la provincia ya existe.",
	MsgProvinceRegionNotFound: "La región indicada no existe.",

	MsgSupermarketNotFound:   "El supermercado no existe.",
	MsgSupermarketNameExists: "El nombre del supermercado ya existe.",

	MsgLocationNotFound:            "La ubicación no existe.",
	MsgLocationAddressExists:       "La dirección de la ubicación ya existe.",
	MsgLocationSupermarketNotFound: "El supermercado indicado no existe.",
	MsgLocationProvinceNotFound:    "La provincia indicada no existe.",

	MsgCategoryNotFound:       "La categoría no existe.",
	MsgCategoryNameExists:     "El nombre de la categoría ya existe.",
	MsgCategoryParentNotFound: "La categoría padre no existe.",
	MsgCategoryParentCycle:    "Una categoría no puede ser ancestro de sí misma.",
	MsgCategoryImageSave:      "Error al guardar la imagen.",
	MsgCategoryImageDelete:    "Error al eliminar la imagen.",
	MsgCategoryImageType:      "El archivo no es una imagen admitida (png, jpg, jpeg, gif, webp, svg).",

	MsgProductNotFound:   "El producto no existe.",
	MsgProductNameExists: "El nombre del producto ya existe.",

	MsgTicketNotFound:             "El ticket no existe.",
	MsgTicketLocationNotFound:     "La ubicación del ticket no existe.",
	MsgTicketProductsNotFound:     "No se encontró ninguno de los productos indicados.",
	MsgTicketProductNotFound:      "El producto no existe.",
	MsgTicketProductAlreadyLinked: "El producto ya está asociado al ticket.",
	MsgTicketProductNotLinked:     "El producto no está asociado al ticket.",

	MsgInUse:        "El registro está referenciado por otros datos y no puede eliminarse.",
	MsgNotFound:     "Recurso no encontrado.",
	MsgValidation:   "Datos inválidos: %v",
	MsgInvalidBody:  "Cuerpo de la petición inválido.",
	MsgInvalidID:    "Identificador inválido.",
	MsgInternal:     "Error interno del servidor.",
	MsgMissingToken: "Se requiere el header Authorization.",
	MsgInvalidToken: "Token inválido o expirado.",
	MsgMissingRole:  "El token no contiene roles.",
	MsgForbidden:    "No tiene permisos para esta operación.",
}

// MessagesEN catálogo en inglés.
var MessagesEN = map[string]string{
	MsgRegionNotFound:   "The region does not exist.",
	MsgRegionCodeExists: "The region code already exists.",

	MsgProvinceNotFound:       "The province does not exist.",
	MsgProvinceCodeExists:     "The province code already exists.",
	MsgProvinceRegionNotFound: "The given region does not exist.",

	MsgSupermarketNotFound:   "The supermarket does not exist.",
	MsgSupermarketNameExists: "The supermarket name already exists.",

	MsgLocationNotFound:            "The location does not exist.",
	MsgLocationAddressExists:       "The location address already exists.",
	MsgLocationSupermarketNotFound: "The given supermarket does not exist.",
	MsgLocationProvinceNotFound:    "The given province does not exist.",

	MsgCategoryNotFound:       "The category does not exist.",
	MsgCategoryNameExists:     "The category name already exists.",
	MsgCategoryParentNotFound: "The parent category does not exist.",
	MsgCategoryParentCycle:    "A category cannot be its own ancestor.",
	MsgCategoryImageSave:      "Could not save the image.",
	MsgCategoryImageDelete:    "Could not delete the image.",
	MsgCategoryImageType:      "The file is not a supported image (png, jpg, jpeg, gif, webp, svg).",

	MsgProductNotFound:   "The product does not exist.",
	MsgProductNameExists: "The product name already exists.",

	MsgTicketNotFound:             "The ticket does not exist.",
	MsgTicketLocationNotFound:     "The ticket location does not exist.",
	MsgTicketProductsNotFound:     "None of the given products were found.",
	MsgTicketProductNotFound:      "The product does not exist.",
	MsgTicketProductAlreadyLinked: "The product is already linked to the ticket.",
	MsgTicketProductNotLinked:     "The product is not linked to the ticket.",

	MsgInUse:        "The record is referenced by other data and cannot be deleted.",
	MsgNotFound:     "Resource not found.",
	MsgValidation:   "Invalid data: %v",
	MsgInvalidBody:  "Invalid request body.",
	MsgInvalidID:    "Invalid identifier.",
	MsgInternal:     "Internal server error.",
	MsgMissingToken: "The Authorization header is required.",
	MsgInvalidToken: "Invalid or expired token.",
	MsgMissingRole:  "The token has no roles.",
	MsgForbidden:    "You are not allowed to perform this operation.",
}
