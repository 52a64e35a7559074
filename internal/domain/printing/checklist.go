package printing

// ChecklistGroup is a titled block of inspection items
type ChecklistGroup struct {
	Title string
	Items []string
}

// DeliveryChecklist is the inspection sheet signed when a car is handed over
func DeliveryChecklist() []ChecklistGroup {
	return []ChecklistGroup{
		{
			Title: "Documentação",
			Items: []string{
				"CRLV em dia",
				"Recibo de compra e venda (ATPV-e) preenchido",
				"Manual do proprietário",
				"Manual de manutenção / revisões",
				"Laudo cautelar",
			},
		},
		{
			Title: "Exterior",
			Items: []string{
				"Pintura e lataria",
				"Para-choques",
				"Faróis e lanternas",
				"Vidros e retrovisores",
				"Rodas e calotas",
				"Pneus (incluindo estepe)",
			},
		},
		{
			Title: "Interior",
			Items: []string{
				"Bancos e forrações",
				"Painel e luzes de advertência",
				"Ar-condicionado",
				"Sistema de som / multimídia",
				"Travas e vidros elétricos",
				"Cintos de segurança",
			},
		},
		{
			Title: "Mecânica",
			Items: []string{
				"Nível de óleo e arrefecimento",
				"Freios",
				"Suspensão",
				"Bateria",
				"Test drive realizado",
			},
		},
		{
			Title: "Acessórios",
			Items: []string{
				"Chave principal",
				"Chave reserva",
				"Macaco, chave de roda e triângulo",
				"Tapetes",
			},
		},
	}
}
