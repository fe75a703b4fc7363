package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/auth"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/colaborador"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/compra"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/contrato"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/documento"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/foto"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/obra"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/perfil"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/rdo"
	"github.com/leandroarrudaadv-lab/hlhengenhariateste/internal/utils/db"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	database, err := db.GetDB()
	if err != nil {
		logger.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	if err := database.AutoMigrate(
		&auth.Usuario{},
		&auth.RefreshToken{},
		&obra.Obra{},
		&colaborador.Colaborador{},
		&contrato.Contrato{},
		&compra.Compra{},
		&rdo.RDO{},
		&documento.Documento{},
		&foto.Foto{},
		&perfil.Perfil{},
	); err != nil {
		logger.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	// Handlers
	authHandler := auth.NewHandler(database, logger)
	obraHandler := obra.NewHandler(database)
	colaboradorHandler := colaborador.NewHandler(database)
	contratoHandler := contrato.NewHandler(database)
	compraHandler := compra.NewHandler(database)
	rdoHandler := rdo.NewHandler(database)
	documentoHandler := documento.NewHandler(database)
	fotoHandler := foto.NewHandler(database)
	perfilHandler := perfil.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas de autenticação
	r.HandleFunc("/auth/cadastro", authHandler.Cadastro).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(database)).Methods("POST")

	// Tudo abaixo exige token
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de obras
	api.HandleFunc("/obras", obraHandler.CriarObra).Methods("POST")
	api.HandleFunc("/obras", obraHandler.ListarObras).Methods("GET")
	api.HandleFunc("/obras/{id}", obraHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/obras/{id}", obraHandler.AtualizarObra).Methods("PUT")
	api.HandleFunc("/obras/{id}", obraHandler.AtualizarParcial).Methods("PATCH")
	api.HandleFunc("/obras/{id}", obraHandler.DeletarObra).Methods("DELETE")
	api.HandleFunc("/obras/{id}/progresso", obraHandler.AtualizarProgresso).Methods("PATCH")
	api.HandleFunc("/obras/{id}/compras/resumo", compraHandler.ResumoPorObra).Methods("GET")

	// Rotas de colaboradores
	api.HandleFunc("/colaboradores", colaboradorHandler.CriarColaborador).Methods("POST")
	api.HandleFunc("/colaboradores", colaboradorHandler.ListarColaboradores).Methods("GET")
	api.HandleFunc("/colaboradores/{id}", colaboradorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/colaboradores/{id}", colaboradorHandler.AtualizarColaborador).Methods("PUT")
	api.HandleFunc("/colaboradores/{id}", colaboradorHandler.AtualizarParcial).Methods("PATCH")
	api.HandleFunc("/colaboradores/{id}", colaboradorHandler.DeletarColaborador).Methods("DELETE")

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.CriarContrato).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.ListarContratos).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.AtualizarParcial).Methods("PATCH")
	api.HandleFunc("/contratos/{id}", contratoHandler.DeletarContrato).Methods("DELETE")

	// Rotas de compras
	api.HandleFunc("/compras", compraHandler.CriarCompra).Methods("POST")
	api.HandleFunc("/compras", compraHandler.ListarCompras).Methods("GET")
	api.HandleFunc("/compras/{id}", compraHandler.AtualizarParcial).Methods("PATCH")
	api.HandleFunc("/compras/{id}", compraHandler.DeletarCompra).Methods("DELETE")

	// Rotas de RDOs
	api.HandleFunc("/rdos", rdoHandler.CriarRDO).Methods("POST")
	api.HandleFunc("/rdos", rdoHandler.ListarRDOs).Methods("GET")
	api.HandleFunc("/rdos/{id}", rdoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/rdos/{id}", rdoHandler.AtualizarParcial).Methods("PATCH")
	api.HandleFunc("/rdos/{id}", rdoHandler.DeletarRDO).Methods("DELETE")

	// Rotas de documentos
	api.HandleFunc("/documentos", documentoHandler.CriarDocumento).Methods("POST")
	api.HandleFunc("/documentos", documentoHandler.ListarDocumentos).Methods("GET")
	api.HandleFunc("/documentos/{id}", documentoHandler.AtualizarParcial).Methods("PATCH")
	api.HandleFunc("/documentos/{id}", documentoHandler.DeletarDocumento).Methods("DELETE")

	// Rotas da galeria de fotos
	api.HandleFunc("/fotos", fotoHandler.CriarFoto).Methods("POST")
	api.HandleFunc("/fotos", fotoHandler.ListarFotos).Methods("GET")
	api.HandleFunc("/fotos/{id}", fotoHandler.DeletarFoto).Methods("DELETE")

	// Rotas de perfis
	api.HandleFunc("/perfis/{id}", perfilHandler.BuscarPerfil).Methods("GET")
	api.HandleFunc("/perfis/{id}", perfilHandler.SalvarPerfil).Methods("PUT")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	logger.Info("servidor rodando", zap.String("porta", porta))
	if err := http.ListenAndServe(":"+porta, handler); err != nil {
		logger.Fatal("servidor encerrou", zap.Error(err))
	}
}
