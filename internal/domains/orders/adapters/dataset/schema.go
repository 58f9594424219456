package dataset

// datasetSchema describes the raw sales file: an array of order records with
// title-case keys. Only the fields the engine computes on are constrained;
// shipment fields pass through verbatim and stay optional strings.
const datasetSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["Order Details", "Customer Details"],
    "properties": {
      "Order Details": {
        "type": "object",
        "required": ["Order ID", "Total Price"],
        "properties": {
          "Order ID": {"type": "string", "minLength": 1},
          "Order Date": {"type": "string"},
          "Total Price": {"type": "number", "minimum": 0}
        }
      },
      "Customer Details": {
        "type": "object",
        "required": ["Customer ID", "Customer Name"],
        "properties": {
          "Customer ID": {"type": "string"},
          "Customer Name": {"type": "string"}
        }
      },
      "Employee Details": {
        "type": "object",
        "properties": {
          "Employee Name": {"type": "string"}
        }
      },
      "Shipment Details": {
        "type": "object",
        "properties": {
          "Ship Name": {"type": "string"},
          "Ship Address": {"type": "string"},
          "Ship City": {"type": "string"},
          "Ship Region": {"type": "string"},
          "Ship Postal Code": {"type": "string"},
          "Ship Country": {"type": "string"},
          "Shipper ID": {"type": "string"},
          "Shipper Name": {"type": "string"},
          "Shipped Date": {"type": "string"}
        }
      },
      "Products": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["Product", "Quantity"],
          "properties": {
            "Product": {"type": "string", "minLength": 1},
            "Quantity": {"type": "integer", "minimum": 0},
            "Unit Price": {"type": "number", "minimum": 0},
            "Total": {"type": "number", "minimum": 0}
          }
        }
      }
    }
  }
}`
