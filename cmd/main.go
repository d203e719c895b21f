package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/intelicom/api-crm/internal/abonado"
	"github.com/intelicom/api-crm/internal/auth"
	"github.com/intelicom/api-crm/internal/catalogo"
	"github.com/intelicom/api-crm/internal/cobertura"
	"github.com/intelicom/api-crm/internal/contrato"
	"github.com/intelicom/api-crm/internal/documento"
	"github.com/intelicom/api-crm/internal/historial"
	"github.com/intelicom/api-crm/internal/lead"
	"github.com/intelicom/api-crm/internal/reporte"
	"github.com/intelicom/api-crm/internal/usuario"
	"github.com/intelicom/api-crm/internal/utils/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Archivo .env no encontrado, usando variables de entorno")
	}

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Error al conectar a la base de datos:", err)
	}

	if err := catalogo.Migrate(conn); err != nil {
		log.Fatal("Error en AutoMigrate de catálogos:", err)
	}
	if err := conn.AutoMigrate(
		&usuario.Usuario{},
		&documento.Documento{},
		&lead.Lead{},
		&historial.HistorialLead{},
		&contrato.Contrato{},
	); err != nil {
		log.Fatal("Error en AutoMigrate:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(conn)
	leadHandler := lead.NewHandler(conn)
	contratoHandler := contrato.NewHandler(conn)
	historialHandler := historial.NewHandler(conn)
	catalogoHandler := catalogo.NewHandler(conn)
	reporteHandler := reporte.NewHandler(conn)
	coberturaHandler := cobertura.NewHandler()
	abonadoHandler := abonado.NewHandler()

	// Router
	r := mux.NewRouter()

	// Rutas públicas
	r.HandleFunc("/token", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.Crear).Methods("POST")

	// Rutas protegidas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacion)

	api.HandleFunc("/usuarios/{id}", usuarioHandler.Detalle).Methods("GET")
	api.HandleFunc("/usuarios/cambiar-password", usuarioHandler.CambiarPassword).Methods("POST")

	// Rutas de leads
	api.HandleFunc("/leads", leadHandler.Crear).Methods("POST")
	api.HandleFunc("/leads", leadHandler.Listar).Methods("GET")
	api.HandleFunc("/leads/buscar/{movil}", leadHandler.Buscar).Methods("GET")
	api.HandleFunc("/leads/metadata", catalogoHandler.Metadata).Methods("GET")
	api.HandleFunc("/leads/{id}", leadHandler.Detalle).Methods("GET")
	api.HandleFunc("/leads/{id}", leadHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/leads/{id}", leadHandler.ActualizarParcial).Methods("PATCH")
	api.HandleFunc("/leads/{id}", leadHandler.Eliminar).Methods("DELETE")
	api.HandleFunc("/leads/{id}/convertir", contratoHandler.ConvertirLead).Methods("POST")
	api.HandleFunc("/leads/{id}/historial", historialHandler.ListarPorLead).Methods("GET")

	// Rutas de contratos
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.ActualizarParcial).Methods("PATCH")
	api.HandleFunc("/contratos/{id}", contratoHandler.Eliminar).Methods("DELETE")

	// Rutas de catálogos
	api.HandleFunc("/catalogos/{nombre}", catalogoHandler.Listar).Methods("GET")
	api.HandleFunc("/provincias/{departamentoID}", catalogoHandler.ProvinciasPorDepartamento).Methods("GET")
	api.HandleFunc("/distritos/{provinciaID}", catalogoHandler.DistritosPorProvincia).Methods("GET")
	api.HandleFunc("/subtipos/{tipoContactoID}", catalogoHandler.SubtiposPorTipoContacto).Methods("GET")

	// Reportes y servicios externos
	api.HandleFunc("/reportes/leads-por-origen", reporteHandler.LeadsPorOrigen).Methods("GET")
	api.HandleFunc("/cobertura", coberturaHandler.Consultar).Methods("POST")
	api.HandleFunc("/consulta-abonado", abonadoHandler.Consultar).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("Servidor corriendo en http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
